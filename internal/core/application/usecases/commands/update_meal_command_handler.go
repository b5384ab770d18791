package commands

import (
	"context"
)

// UpdateMealCommandHandler handles administrative meal edits.
type UpdateMealCommandHandler struct {
	uowFactory MealUoWFactory
}

// NewUpdateMealCommandHandler creates a handler for meal update operations.
func NewUpdateMealCommandHandler(uowFactory MealUoWFactory) UpdateMealCommandHandler {
	return UpdateMealCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the meal update command.
// Returns an error wrapping errs.ErrObjectNotFound when the meal does not exist.
func (h UpdateMealCommandHandler) Handle(ctx context.Context, cmd UpdateMealCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	mealRepo := uow.MealRepository()

	existing, err := mealRepo.Get(ctx, cmd.MealID())
	if err != nil {
		return err
	}

	if err = existing.Update(
		cmd.Name(), cmd.Composition(), cmd.Price(), cmd.OriginPlanet(), cmd.Description(),
	); err != nil {
		return err
	}

	if err = mealRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
