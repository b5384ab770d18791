package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrDeleteHeroCommandIsNotConstructed = errors.New(
	"DeleteHeroCommand must be created via NewDeleteHeroCommand constructor",
)

// DeleteHeroCommand represents a request to remove a hero from the catalog.
// Deletion is unconditional: orders already referencing the hero stay in
// place and are cancelled by the worker when it hits the dangling reference.
type DeleteHeroCommand struct { //nolint:recvcheck //using for validation
	heroID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteHeroCommand creates a command to remove a hero.
func NewDeleteHeroCommand(heroID kernel.UUID) (DeleteHeroCommand, error) {
	if err := heroID.Validate(); err != nil {
		return DeleteHeroCommand{}, err
	}

	return DeleteHeroCommand{
		heroID: heroID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteHeroCommand) Validate() error {
	return c.guard.Validate(ErrDeleteHeroCommandIsNotConstructed)
}

// HeroID returns the identifier of the hero to remove.
func (c DeleteHeroCommand) HeroID() kernel.UUID {
	return c.heroID
}
