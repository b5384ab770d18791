package commands

import (
	"context"

	"cafeteria/internal/core/domain/model/hero"
)

// CreateHeroCommandHandler handles the business logic for hero registration.
type CreateHeroCommandHandler struct {
	uowFactory HeroUoWFactory
}

// NewCreateHeroCommandHandler creates a handler for hero registration operations.
func NewCreateHeroCommandHandler(uowFactory HeroUoWFactory) CreateHeroCommandHandler {
	return CreateHeroCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hero registration command.
// Uses a transaction to ensure the hero is persisted or rolled back on error.
func (h CreateHeroCommandHandler) Handle(ctx context.Context, cmd CreateHeroCommand) error {
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

	newHero, err := hero.NewHero(cmd.HeroID(), cmd.Name(), cmd.Planet(), cmd.Restrictions())
	if err != nil {
		return err
	}

	if err = uow.HeroRepository().Add(ctx, newHero); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
