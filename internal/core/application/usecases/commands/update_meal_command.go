package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrUpdateMealCommandIsNotConstructed = errors.New(
	"UpdateMealCommand must be created via NewUpdateMealCommand constructor",
)

// UpdateMealCommand represents an administrative request to replace a meal's
// catalog fields. The full new state is supplied; there is no partial patch.
type UpdateMealCommand struct { //nolint:recvcheck //using for validation
	mealID       kernel.UUID
	name         string
	composition  []string
	price        float64
	originPlanet string
	description  string

	guard guard.ConstructorGuard
}

// NewUpdateMealCommand creates a command to update an existing meal.
// Composition and price constraints are enforced by the aggregate.
func NewUpdateMealCommand(
	mealID kernel.UUID,
	name string,
	composition []string,
	price float64,
	originPlanet string,
	description string,
) (UpdateMealCommand, error) {
	cmd := UpdateMealCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMealID(mealID),
		cmd.setName(name),
		cmd.setComposition(composition),
		cmd.setOriginPlanet(originPlanet),
	); err != nil {
		return UpdateMealCommand{}, err
	}

	cmd.price = price
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMealCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMealCommandIsNotConstructed)
}

// MealID returns the identifier of the meal to update.
func (c UpdateMealCommand) MealID() kernel.UUID {
	return c.mealID
}

// Name returns the meal's new display name.
func (c UpdateMealCommand) Name() string {
	return c.name
}

// Composition returns the new ingredient set as supplied by the caller.
func (c UpdateMealCommand) Composition() []string {
	return c.composition
}

// Price returns the meal's new price.
func (c UpdateMealCommand) Price() float64 {
	return c.price
}

// OriginPlanet returns the meal's new origin planet.
func (c UpdateMealCommand) OriginPlanet() string {
	return c.originPlanet
}

// Description returns the meal's new optional description.
func (c UpdateMealCommand) Description() string {
	return c.description
}

func (c *UpdateMealCommand) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}
	c.mealID = mealID
	return nil
}

func (c *UpdateMealCommand) setComposition(composition []string) error {
	if len(composition) == 0 {
		return ErrMealCompositionIsRequired
	}
	c.composition = composition
	return nil
}

func (c *UpdateMealCommand) setName(name string) error {
	if name == "" {
		return ErrMealNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateMealCommand) setOriginPlanet(originPlanet string) error {
	if originPlanet == "" {
		return ErrMealOriginPlanetIsRequired
	}
	c.originPlanet = originPlanet
	return nil
}
