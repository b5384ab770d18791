package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order pairing a hero
// with a meal. The optional message is a caller-supplied note carried on the
// order until the worker overwrites it with the processing outcome.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	heroID  kernel.UUID
	mealID  kernel.UUID
	message string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// All three identifiers must be valid UUIDs; whether the hero and meal exist
// is checked by the handler against the store.
func NewCreateOrderCommand(orderID, heroID, mealID kernel.UUID, message string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setHeroID(heroID),
		cmd.setMealID(mealID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.message = message
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// HeroID returns the identifier of the hero placing the order.
func (c CreateOrderCommand) HeroID() kernel.UUID {
	return c.heroID
}

// MealID returns the identifier of the ordered meal.
func (c CreateOrderCommand) MealID() kernel.UUID {
	return c.mealID
}

// Message returns the optional caller-supplied note.
func (c CreateOrderCommand) Message() string {
	return c.message
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setHeroID(heroID kernel.UUID) error {
	if err := heroID.Validate(); err != nil {
		return err
	}
	c.heroID = heroID
	return nil
}

func (c *CreateOrderCommand) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}
	c.mealID = mealID
	return nil
}
