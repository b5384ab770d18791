package commands

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrDeleteMealCommandIsNotConstructed = errors.New(
	"DeleteMealCommand must be created via NewDeleteMealCommand constructor",
)

// DeleteMealCommand represents a request to remove a meal from the catalog.
// Deletion is unconditional, mirroring DeleteHeroCommand.
type DeleteMealCommand struct { //nolint:recvcheck //using for validation
	mealID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMealCommand creates a command to remove a meal.
func NewDeleteMealCommand(mealID kernel.UUID) (DeleteMealCommand, error) {
	if err := mealID.Validate(); err != nil {
		return DeleteMealCommand{}, err
	}

	return DeleteMealCommand{
		mealID: mealID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMealCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMealCommandIsNotConstructed)
}

// MealID returns the identifier of the meal to remove.
func (c DeleteMealCommand) MealID() kernel.UUID {
	return c.mealID
}
