package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetHeroByIDQueryHandler looks up one hero by identifier.
type GetHeroByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetHeroByIDQueryHandler creates a handler for single-hero lookups.
func NewGetHeroByIDQueryHandler(db *gorm.DB) GetHeroByIDQueryHandler {
	return GetHeroByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when no hero matches.
func (h GetHeroByIDQueryHandler) Handle(
	ctx context.Context,
	query GetHeroByIDQuery,
) (GetAllHeroesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllHeroesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			planet,
			restrictions
		FROM heroes
		WHERE id = ?
	`, query.HeroID().Bytes()).Rows()
	if err != nil {
		return GetAllHeroesQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAllHeroesQueryResponse{}, err
		}
		return GetAllHeroesQueryResponse{},
			errs.NewObjectNotFoundError("hero", query.HeroID())
	}

	var id uuid.UUID
	var name, planet string
	var restrictions pq.StringArray

	if err = rows.Scan(&id, &name, &planet, &restrictions); err != nil {
		return GetAllHeroesQueryResponse{}, err
	}

	heroID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllHeroesQueryResponse{}, err
	}

	return GetAllHeroesQueryResponse{
		ID:           heroID,
		Name:         name,
		Planet:       planet,
		Restrictions: restrictions,
	}, nil
}
