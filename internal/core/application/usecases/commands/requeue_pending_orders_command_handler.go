package commands

import (
	"context"
	"errors"
	"time"

	"cafeteria/internal/core/ports"
)

// RequeuePendingOrdersCommandHandler closes the gap left by degraded
// creation: when an order row committed but the job publish failed, the order
// sits in Pending with nothing driving it forward. This handler re-publishes
// a job for every stale Pending order.
//
// Re-enqueueing an order whose job is merely slow produces a duplicate
// delivery, which the worker already tolerates, so the handler errs on the
// side of publishing.
type RequeuePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	queue      ports.WorkQueue
}

// NewRequeuePendingOrdersCommandHandler creates the recovery handler.
func NewRequeuePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	queue ports.WorkQueue,
) RequeuePendingOrdersCommandHandler {
	return RequeuePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle re-publishes jobs for stale Pending orders and returns the number of
// jobs published. Publish failures for individual orders are joined and
// returned after the whole batch is attempted.
func (h RequeuePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd RequeuePendingOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	before := time.Now().UTC().Add(-cmd.OlderThan())

	stale, err := uow.OrderRepository().GetPendingOlderThan(ctx, before)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	var publishErrs []error
	published := 0
	for _, ord := range stale {
		if err = h.queue.Enqueue(ctx, ports.Job{OrderID: ord.ID().String()}); err != nil {
			publishErrs = append(publishErrs, err)
			continue
		}
		published++
	}

	return published, errors.Join(publishErrs...)
}
