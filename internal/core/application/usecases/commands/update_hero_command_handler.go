package commands

import (
	"context"
)

// UpdateHeroCommandHandler handles administrative hero edits. Updating a
// hero's restrictions changes the outcome of conflict checks for orders that
// have not been processed yet; the worker always reads current catalog state.
type UpdateHeroCommandHandler struct {
	uowFactory HeroUoWFactory
}

// NewUpdateHeroCommandHandler creates a handler for hero update operations.
func NewUpdateHeroCommandHandler(uowFactory HeroUoWFactory) UpdateHeroCommandHandler {
	return UpdateHeroCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hero update command.
// Returns an error wrapping errs.ErrObjectNotFound when the hero does not exist.
func (h UpdateHeroCommandHandler) Handle(ctx context.Context, cmd UpdateHeroCommand) error {
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

	heroRepo := uow.HeroRepository()

	existing, err := heroRepo.Get(ctx, cmd.HeroID())
	if err != nil {
		return err
	}

	if err = existing.Update(cmd.Name(), cmd.Planet(), cmd.Restrictions()); err != nil {
		return err
	}

	if err = heroRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
