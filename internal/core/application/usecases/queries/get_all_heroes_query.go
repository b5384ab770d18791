// Package queries contains read-only operations returning view models
// directly from the database, bypassing aggregates and the unit of work.
package queries

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrGetAllHeroesQueryIsNotConstructed = errors.New(
	"GetAllHeroesQuery must be created via NewGetAllHeroesQuery constructor",
)

// GetAllHeroesQuery retrieves every hero in the catalog.
type GetAllHeroesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllHeroesQuery creates a query to list the hero catalog.
func NewGetAllHeroesQuery() GetAllHeroesQuery {
	return GetAllHeroesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllHeroesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllHeroesQueryIsNotConstructed)
}

// GetAllHeroesQueryResponse is the hero view model.
type GetAllHeroesQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Planet       string
	Restrictions []string
}
