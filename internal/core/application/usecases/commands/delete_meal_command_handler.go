package commands

import (
	"context"
)

// DeleteMealCommandHandler handles meal removal.
type DeleteMealCommandHandler struct {
	uowFactory MealUoWFactory
}

// NewDeleteMealCommandHandler creates a handler for meal removal operations.
func NewDeleteMealCommandHandler(uowFactory MealUoWFactory) DeleteMealCommandHandler {
	return DeleteMealCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the meal removal command.
func (h DeleteMealCommandHandler) Handle(ctx context.Context, cmd DeleteMealCommand) error {
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

	if err := uow.MealRepository().Delete(ctx, cmd.MealID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
