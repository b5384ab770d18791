package commands

import (
	"context"
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/ports"
)

// ErrEnqueueFailed signals that the order row was committed but the job could
// not be published. The order exists and will eventually be picked up by the
// pending-order recovery job; callers surface this as a degraded-creation
// result (HTTP 202), never as a failed request.
var ErrEnqueueFailed = errors.New("order accepted but processing could not be scheduled")

// CreateOrderCommandHandler handles the submission gateway side of the
// pipeline: it verifies the referenced hero and meal exist, persists the
// order in Pending status, and publishes a job descriptor carrying only the
// order identifier.
//
// The enqueue happens after the commit on purpose. Enqueueing first could
// deliver a job for a row that was rolled back; enqueueing after at worst
// delays processing until the recovery job re-enqueues the order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.WorkQueue
}

// NewCreateOrderCommandHandler creates a handler for order submission.
// Requires a UoWFactory for transactional persistence and the work queue the
// worker pool consumes from.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, queue ports.WorkQueue) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the order submission command.
// Returns an error wrapping errs.ErrObjectNotFound when the hero or meal does
// not exist, and ErrEnqueueFailed when the row committed but the job could
// not be published.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	// Referential check: the hero and meal must exist right now. Deletion
	// after this point is handled by the worker, not rejected here.
	if _, err := uow.HeroRepository().Get(ctx, cmd.HeroID()); err != nil {
		return err
	}
	if _, err := uow.MealRepository().Get(ctx, cmd.MealID()); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.HeroID(), cmd.MealID(), cmd.Message())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.queue.Enqueue(ctx, ports.Job{OrderID: cmd.OrderID().String()}); err != nil {
		return fmt.Errorf("%w: %w", ErrEnqueueFailed, err)
	}

	return nil
}
