package queries

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrGetHeroByIDQueryIsNotConstructed = errors.New(
	"GetHeroByIDQuery must be created via NewGetHeroByIDQuery constructor",
)

// GetHeroByIDQuery retrieves a single hero by identifier.
type GetHeroByIDQuery struct { //nolint:recvcheck //using for validation
	heroID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetHeroByIDQuery creates a query for one hero.
func NewGetHeroByIDQuery(heroID kernel.UUID) (GetHeroByIDQuery, error) {
	if err := heroID.Validate(); err != nil {
		return GetHeroByIDQuery{}, err
	}

	return GetHeroByIDQuery{
		heroID: heroID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHeroByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetHeroByIDQueryIsNotConstructed)
}

// HeroID returns the identifier to look up.
func (q GetHeroByIDQuery) HeroID() kernel.UUID {
	return q.heroID
}
