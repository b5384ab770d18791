package queries

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrGetAllMealsQueryIsNotConstructed = errors.New(
	"GetAllMealsQuery must be created via NewGetAllMealsQuery constructor",
)

// GetAllMealsQuery retrieves every meal in the catalog.
type GetAllMealsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMealsQuery creates a query to list the meal catalog.
func NewGetAllMealsQuery() GetAllMealsQuery {
	return GetAllMealsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMealsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMealsQueryIsNotConstructed)
}

// GetAllMealsQueryResponse is the meal view model.
type GetAllMealsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Composition  []string
	Price        float64
	OriginPlanet string
	Description  string
}
