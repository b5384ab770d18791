package queries

import (
	"errors"
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order, newest first.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is the order view model callers poll while
// waiting for a terminal state.
type GetAllOrdersQueryResponse struct {
	ID          kernel.UUID
	HeroID      kernel.UUID
	MealID      kernel.UUID
	Status      string
	Message     string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
