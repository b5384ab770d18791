package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllHeroesQueryHandler lists the hero catalog straight from the database.
type GetAllHeroesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllHeroesQueryHandler creates a handler for hero catalog queries.
func NewGetAllHeroesQueryHandler(db *gorm.DB) GetAllHeroesQueryHandler {
	return GetAllHeroesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for stable output.
func (h GetAllHeroesQueryHandler) Handle(
	ctx context.Context,
	query GetAllHeroesQuery,
) ([]GetAllHeroesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	heroes := make([]GetAllHeroesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			planet,
			restrictions
		FROM heroes
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, planet string
		var restrictions pq.StringArray

		if err = rows.Scan(&id, &name, &planet, &restrictions); err != nil {
			return nil, err
		}

		heroID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		heroes = append(heroes, GetAllHeroesQueryResponse{
			ID:           heroID,
			Name:         name,
			Planet:       planet,
			Restrictions: restrictions,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return heroes, nil
}
