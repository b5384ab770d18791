package ports

import (
	"context"
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The store is the single coordination point between workers and
// user-initiated cancellations, so Update must apply an optimistic version
// check: the write succeeds only if the persisted version still matches the
// version the aggregate was read with.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, guarded by the
	// aggregate's version. Returns an error wrapping errs.ErrVersionIsInvalid
	// when another writer committed first, and one wrapping
	// errs.ErrObjectNotFound when the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPendingOlderThan retrieves orders still in Pending status created
	// before the given instant. Used by the recovery job to re-enqueue orders
	// whose enqueue failed after the row was committed.
	GetPendingOlderThan(ctx context.Context, before time.Time) ([]*order.Order, error)

	// Delete removes an order unconditionally, regardless of its state.
	Delete(ctx context.Context, id kernel.UUID) error
}
