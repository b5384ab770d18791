package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand represents a single job descriptor pulled from the work
// queue: process the order with this identifier.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process an order.
func NewProcessOrderCommand(orderID kernel.UUID) (ProcessOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProcessOrderCommand{}, err
	}

	return ProcessOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to process.
func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
