package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetMealByIDQueryHandler looks up one meal by identifier.
type GetMealByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetMealByIDQueryHandler creates a handler for single-meal lookups.
func NewGetMealByIDQueryHandler(db *gorm.DB) GetMealByIDQueryHandler {
	return GetMealByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when no meal matches.
func (h GetMealByIDQueryHandler) Handle(
	ctx context.Context,
	query GetMealByIDQuery,
) (GetAllMealsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllMealsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			composition,
			price,
			origin_planet,
			description
		FROM meals
		WHERE id = ?
	`, query.MealID().Bytes()).Rows()
	if err != nil {
		return GetAllMealsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAllMealsQueryResponse{}, err
		}
		return GetAllMealsQueryResponse{},
			errs.NewObjectNotFoundError("meal", query.MealID())
	}

	var id uuid.UUID
	var name, originPlanet, description string
	var composition pq.StringArray
	var price float64

	if err = rows.Scan(&id, &name, &composition, &price, &originPlanet, &description); err != nil {
		return GetAllMealsQueryResponse{}, err
	}

	mealID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllMealsQueryResponse{}, err
	}

	return GetAllMealsQueryResponse{
		ID:           mealID,
		Name:         name,
		Composition:  composition,
		Price:        price,
		OriginPlanet: originPlanet,
		Description:  description,
	}, nil
}
