// Package workers runs the consuming side of the fulfillment pipeline: a
// pool of goroutines draining the work queue and driving each order to a
// terminal state.
package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/pkg/errs"
)

// OrderProcessor handles one order job end to end.
type OrderProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessOrderCommand) error
}

// OrderWorkerPool runs N goroutines over one shared delivery stream.
//
// Acknowledgement policy:
//   - success, duplicate of finished work: ack
//   - order row gone (deleted after enqueue): ack, the job is stale
//   - version conflict (a concurrent writer won): ack, the outcome stands
//   - malformed order id: drop without requeue, redelivery cannot help
//   - anything else (store down, context cancelled): nack with requeue so
//     another worker retries the job
type OrderWorkerPool struct {
	queue     ports.WorkQueue
	processor OrderProcessor
	workers   int
	logger    *slog.Logger

	wg sync.WaitGroup
}

// NewOrderWorkerPool creates a pool of the given size. Size must be at least 1.
func NewOrderWorkerPool(
	queue ports.WorkQueue,
	processor OrderProcessor,
	workers int,
	logger *slog.Logger,
) (*OrderWorkerPool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("worker pool size must be at least 1, got %d", workers)
	}

	return &OrderWorkerPool{
		queue:     queue,
		processor: processor,
		workers:   workers,
		logger:    logger.With("component", "order_worker_pool"),
	}, nil
}

// Start opens the consumer stream and launches the workers. It returns
// immediately; workers run until ctx is cancelled or the stream closes.
func (p *OrderWorkerPool) Start(ctx context.Context) error {
	deliveries, err := p.queue.Consume(ctx)
	if err != nil {
		return fmt.Errorf("open consumer stream: %w", err)
	}

	p.logger.Info("starting order workers", "count", p.workers)

	for i := range p.workers {
		p.wg.Add(1)
		go func(workerID int) {
			defer p.wg.Done()
			p.run(ctx, workerID, deliveries)
		}(i)
	}

	return nil
}

// Wait blocks until every worker has exited.
func (p *OrderWorkerPool) Wait() {
	p.wg.Wait()
}

func (p *OrderWorkerPool) run(ctx context.Context, workerID int, deliveries <-chan ports.Delivery) {
	logger := p.logger.With("worker", workerID)

	for delivery := range deliveries {
		p.process(ctx, logger, delivery)
	}

	logger.Info("delivery stream closed, worker exiting")
}

func (p *OrderWorkerPool) process(ctx context.Context, logger *slog.Logger, delivery ports.Delivery) {
	rawID := delivery.Job().OrderID
	logger = logger.With("order_id", rawID)

	orderID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		logger.Error("dropping job with malformed order id", "error", err)
		p.nack(logger, delivery, false)
		return
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		logger.Error("dropping invalid job", "error", err)
		p.nack(logger, delivery, false)
		return
	}

	switch err = p.processor.Handle(ctx, cmd); {
	case err == nil:
		logger.Info("order processed")
		p.ack(logger, delivery)
	case errors.Is(err, commands.ErrOrderNotFound):
		// Order deleted after the job was enqueued; nothing left to do.
		logger.Info("order no longer exists, dropping job")
		p.ack(logger, delivery)
	case errors.Is(err, errs.ErrVersionIsInvalid):
		// A concurrent writer finished the order first; its outcome stands.
		logger.Info("lost write race, dropping job")
		p.ack(logger, delivery)
	default:
		logger.Error("processing failed, requeueing job", "error", err)
		p.nack(logger, delivery, true)
	}
}

func (p *OrderWorkerPool) ack(logger *slog.Logger, delivery ports.Delivery) {
	if err := delivery.Ack(); err != nil {
		logger.Error("ack failed", "error", err)
	}
}

func (p *OrderWorkerPool) nack(logger *slog.Logger, delivery ports.Delivery, requeue bool) {
	if err := delivery.Nack(requeue); err != nil {
		logger.Error("nack failed", "error", err)
	}
}
