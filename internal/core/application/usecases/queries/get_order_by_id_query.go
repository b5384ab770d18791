package queries

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order. This is the polling endpoint's
// query: callers submit an order, then fetch it until the status is terminal.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier to look up.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
