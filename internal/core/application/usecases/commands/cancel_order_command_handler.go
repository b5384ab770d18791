package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrOrderAlreadyFinished signals a state conflict: the order reached a
// terminal state before the cancellation could be applied. The order is left
// unchanged.
var ErrOrderAlreadyFinished = errors.New("order is already in a terminal state")

// CancelOrderCommandHandler handles user-initiated cancellation.
//
// A cancellation racing a worker on the same order is resolved by the store's
// optimistic version check: whichever write commits first wins, and the loser
// observes a version conflict instead of silently overwriting the outcome.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns ErrOrderAlreadyFinished when the order is already terminal, an
// error wrapping errs.ErrObjectNotFound when it does not exist, and one
// wrapping errs.ErrVersionIsInvalid when a concurrent writer won the race.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Cancel(cmd.Reason()); err != nil {
		return fmt.Errorf("%w: %w", ErrOrderAlreadyFinished, err)
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
