package commands

import (
	"context"
)

// DeleteHeroCommandHandler handles hero removal.
type DeleteHeroCommandHandler struct {
	uowFactory HeroUoWFactory
}

// NewDeleteHeroCommandHandler creates a handler for hero removal operations.
func NewDeleteHeroCommandHandler(uowFactory HeroUoWFactory) DeleteHeroCommandHandler {
	return DeleteHeroCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hero removal command.
func (h DeleteHeroCommandHandler) Handle(ctx context.Context, cmd DeleteHeroCommand) error {
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

	if err := uow.HeroRepository().Delete(ctx, cmd.HeroID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
