package commands

import (
	"context"

	"cafeteria/internal/core/domain/model/meal"
)

// CreateMealCommandHandler handles the business logic for adding catalog meals.
type CreateMealCommandHandler struct {
	uowFactory MealUoWFactory
}

// NewCreateMealCommandHandler creates a handler for meal catalog operations.
func NewCreateMealCommandHandler(uowFactory MealUoWFactory) CreateMealCommandHandler {
	return CreateMealCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the meal creation command.
func (h CreateMealCommandHandler) Handle(ctx context.Context, cmd CreateMealCommand) error {
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

	newMeal, err := meal.NewMeal(
		cmd.MealID(), cmd.Name(), cmd.Composition(), cmd.Price(), cmd.OriginPlanet(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.MealRepository().Add(ctx, newMeal); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
