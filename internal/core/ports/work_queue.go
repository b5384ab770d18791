package ports

import (
	"context"
)

// Job is the queue payload: the order identifier and nothing else. Workers
// always re-read authoritative state from the store, so the descriptor never
// carries a snapshot of order, hero, or meal data.
type Job struct {
	OrderID string `json:"order_id"`
}

// Delivery is a single received job. The queue redelivers jobs that are
// neither acked nor nacked-without-requeue, giving the pipeline its
// at-least-once semantics.
type Delivery interface {
	// Job returns the decoded job descriptor.
	Job() Job

	// Ack marks the job as processed; the queue will not deliver it again.
	Ack() error

	// Nack returns the job to the queue. With requeue true the job is
	// redelivered later; with requeue false it is dropped.
	Nack(requeue bool) error
}

// WorkQueue is the durable FIFO channel decoupling order intake from
// processing.
//
// Guarantees: at-least-once delivery (a job may be redelivered after a worker
// crash), no ordering across different orders, and no delivery at all if the
// broker loses the queue; the creating use case surfaces an enqueue failure
// as a degraded-creation result instead of failing the request.
type WorkQueue interface {
	// Enqueue publishes a job durably. Callers must treat an error as
	// "processing not guaranteed yet", not as a failed order creation.
	Enqueue(ctx context.Context, job Job) error

	// Consume opens a delivery stream. The channel closes when ctx is
	// cancelled or the underlying connection is lost.
	Consume(ctx context.Context) (<-chan Delivery, error)

	// Close releases the underlying connection.
	Close() error
}
