package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrUpdateHeroCommandIsNotConstructed = errors.New(
	"UpdateHeroCommand must be created via NewUpdateHeroCommand constructor",
)

// UpdateHeroCommand represents an administrative request to replace a hero's
// catalog fields. The full new state is supplied; there is no partial patch.
type UpdateHeroCommand struct { //nolint:recvcheck //using for validation
	heroID       kernel.UUID
	name         string
	planet       string
	restrictions []string

	guard guard.ConstructorGuard
}

// NewUpdateHeroCommand creates a command to update an existing hero.
// The restriction set may be empty; items are normalized by the aggregate.
func NewUpdateHeroCommand(heroID kernel.UUID, name, planet string, restrictions []string) (UpdateHeroCommand, error) {
	cmd := UpdateHeroCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHeroID(heroID),
		cmd.setName(name),
		cmd.setPlanet(planet),
	); err != nil {
		return UpdateHeroCommand{}, err
	}

	cmd.restrictions = restrictions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateHeroCommand) Validate() error {
	return c.guard.Validate(ErrUpdateHeroCommandIsNotConstructed)
}

// HeroID returns the identifier of the hero to update.
func (c UpdateHeroCommand) HeroID() kernel.UUID {
	return c.heroID
}

// Name returns the hero's new display name.
func (c UpdateHeroCommand) Name() string {
	return c.name
}

// Planet returns the hero's new home planet.
func (c UpdateHeroCommand) Planet() string {
	return c.planet
}

// Restrictions returns the new restriction set as supplied by the caller.
func (c UpdateHeroCommand) Restrictions() []string {
	return c.restrictions
}

func (c *UpdateHeroCommand) setHeroID(heroID kernel.UUID) error {
	if err := heroID.Validate(); err != nil {
		return err
	}
	c.heroID = heroID
	return nil
}

func (c *UpdateHeroCommand) setName(name string) error {
	if name == "" {
		return ErrHeroNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateHeroCommand) setPlanet(planet string) error {
	if planet == "" {
		return ErrHeroPlanetIsRequired
	}
	c.planet = planet
	return nil
}
