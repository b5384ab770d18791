package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var (
	ErrCreateMealCommandIsNotConstructed = errors.New(
		"CreateMealCommand must be created via NewCreateMealCommand constructor",
	)
	ErrMealNameIsRequired         = errors.New("meal name is required")
	ErrMealOriginPlanetIsRequired = errors.New("meal origin planet is required")
	ErrMealCompositionIsRequired  = errors.New("meal composition is required")
)

// CreateMealCommand represents a request to add a new meal to the catalog.
type CreateMealCommand struct { //nolint:recvcheck //using for validation
	mealID       kernel.UUID
	name         string
	composition  []string
	price        float64
	originPlanet string
	description  string

	guard guard.ConstructorGuard
}

// NewCreateMealCommand creates a command to add a meal to the catalog.
func NewCreateMealCommand(
	mealID kernel.UUID,
	name string,
	composition []string,
	price float64,
	originPlanet string,
	description string,
) (CreateMealCommand, error) {
	cmd := CreateMealCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMealID(mealID),
		cmd.setName(name),
		cmd.setComposition(composition),
		cmd.setOriginPlanet(originPlanet),
	); err != nil {
		return CreateMealCommand{}, err
	}

	cmd.price = price
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMealCommand) Validate() error {
	return c.guard.Validate(ErrCreateMealCommandIsNotConstructed)
}

// MealID returns the unique identifier for the meal.
func (c CreateMealCommand) MealID() kernel.UUID {
	return c.mealID
}

// Name returns the meal's display name.
func (c CreateMealCommand) Name() string {
	return c.name
}

// Composition returns the raw ingredient set as supplied by the caller.
func (c CreateMealCommand) Composition() []string {
	return c.composition
}

// Price returns the meal's price in credits.
func (c CreateMealCommand) Price() float64 {
	return c.price
}

// OriginPlanet returns the planet the recipe comes from.
func (c CreateMealCommand) OriginPlanet() string {
	return c.originPlanet
}

// Description returns the optional meal description.
func (c CreateMealCommand) Description() string {
	return c.description
}

func (c *CreateMealCommand) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}
	c.mealID = mealID
	return nil
}

func (c *CreateMealCommand) setName(name string) error {
	if name == "" {
		return ErrMealNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateMealCommand) setComposition(composition []string) error {
	if len(composition) == 0 {
		return ErrMealCompositionIsRequired
	}
	c.composition = composition
	return nil
}

func (c *CreateMealCommand) setOriginPlanet(originPlanet string) error {
	if originPlanet == "" {
		return ErrMealOriginPlanetIsRequired
	}
	c.originPlanet = originPlanet
	return nil
}
