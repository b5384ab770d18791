package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var (
	ErrCreateHeroCommandIsNotConstructed = errors.New(
		"CreateHeroCommand must be created via NewCreateHeroCommand constructor",
	)
	ErrHeroNameIsRequired   = errors.New("hero name is required")
	ErrHeroPlanetIsRequired = errors.New("hero planet is required")
)

// CreateHeroCommand represents a request to register a new hero in the catalog.
type CreateHeroCommand struct { //nolint:recvcheck //using for validation
	heroID       kernel.UUID
	name         string
	planet       string
	restrictions []string

	guard guard.ConstructorGuard
}

// NewCreateHeroCommand creates a command to register a hero.
// The restriction set may be empty; items are normalized by the aggregate.
func NewCreateHeroCommand(heroID kernel.UUID, name, planet string, restrictions []string) (CreateHeroCommand, error) {
	cmd := CreateHeroCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHeroID(heroID),
		cmd.setName(name),
		cmd.setPlanet(planet),
	); err != nil {
		return CreateHeroCommand{}, err
	}

	cmd.restrictions = restrictions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateHeroCommand) Validate() error {
	return c.guard.Validate(ErrCreateHeroCommandIsNotConstructed)
}

// HeroID returns the unique identifier for the hero.
func (c CreateHeroCommand) HeroID() kernel.UUID {
	return c.heroID
}

// Name returns the hero's display name.
func (c CreateHeroCommand) Name() string {
	return c.name
}

// Planet returns the hero's home planet.
func (c CreateHeroCommand) Planet() string {
	return c.planet
}

// Restrictions returns the raw restriction set as supplied by the caller.
func (c CreateHeroCommand) Restrictions() []string {
	return c.restrictions
}

func (c *CreateHeroCommand) setHeroID(heroID kernel.UUID) error {
	if err := heroID.Validate(); err != nil {
		return err
	}
	c.heroID = heroID
	return nil
}

func (c *CreateHeroCommand) setName(name string) error {
	if name == "" {
		return ErrHeroNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateHeroCommand) setPlanet(planet string) error {
	if planet == "" {
		return ErrHeroPlanetIsRequired
	}
	c.planet = planet
	return nil
}
