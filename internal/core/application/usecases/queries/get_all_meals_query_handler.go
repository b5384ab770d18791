package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllMealsQueryHandler lists the meal catalog straight from the database.
type GetAllMealsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMealsQueryHandler creates a handler for meal catalog queries.
func NewGetAllMealsQueryHandler(db *gorm.DB) GetAllMealsQueryHandler {
	return GetAllMealsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for stable output.
func (h GetAllMealsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMealsQuery,
) ([]GetAllMealsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	meals := make([]GetAllMealsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			composition,
			price,
			origin_planet,
			description
		FROM meals
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, originPlanet, description string
		var composition pq.StringArray
		var price float64

		if err = rows.Scan(&id, &name, &composition, &price, &originPlanet, &description); err != nil {
			return nil, err
		}

		mealID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		meals = append(meals, GetAllMealsQueryResponse{
			ID:           mealID,
			Name:         name,
			Composition:  composition,
			Price:        price,
			OriginPlanet: originPlanet,
			Description:  description,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
