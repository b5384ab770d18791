package order

import (
	"errors"
	"fmt"
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCompletedAtInconsistent is returned when restoring an order whose
	// completion timestamp does not match its status.
	ErrCompletedAtInconsistent = errs.NewValueIsInvalidError(
		"completedAt must be set exactly when the status is terminal")
)

// Order is the aggregate root of the fulfillment pipeline. It pairs a hero
// with a meal and tracks the outcome of the asynchronous dietary-conflict
// check through its Status.
//
// Invariants:
//   - heroID and mealID referenced existing entities at creation time;
//     later deletion of either is handled during processing, not here
//   - status only moves forward along the state machine graph
//   - completedAt is nil exactly while the status is non-terminal, and is
//     set once when a terminal transition happens
//   - version increases with every persisted mutation; the repository uses
//     it for optimistic concurrency control, so two workers (or a worker and
//     a concurrent cancellation) cannot both apply a terminal write
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// heroID references the hero who placed the order
	heroID kernel.UUID

	// mealID references the ordered meal
	mealID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// message is a human-readable outcome or reason, possibly empty
	message string

	// createdAt is set at creation and never changes
	createdAt time.Time

	// completedAt is set exactly once, when a terminal state is reached
	completedAt *time.Time

	// version is the optimistic concurrency counter maintained by the store
	version int64

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
// The hero and meal identifiers must be valid; whether they resolve to
// existing rows is checked by the creating use case, not here.
// The optional message is a caller-supplied note carried with the order.
func NewOrder(id, heroID, mealID kernel.UUID, message string) (*Order, error) {
	order := &Order{
		status:    Pending,
		message:   message,
		createdAt: time.Now().UTC(),
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setHeroID(heroID),
		order.setMealID(mealID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// It validates identifiers, the status value, the completedAt/status
// consistency invariant, and the version counter.
func RestoreOrder(
	id, heroID, mealID kernel.UUID,
	status Status,
	message string,
	createdAt time.Time,
	completedAt *time.Time,
	version int64,
) (*Order, error) {
	order := &Order{
		message:     message,
		createdAt:   createdAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setHeroID(heroID),
		order.setMealID(mealID),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if (completedAt == nil) == status.IsTerminal() {
		return nil, ErrCompletedAtInconsistent
	}

	return order, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// HeroID returns the identifier of the hero who placed the order.
func (o *Order) HeroID() kernel.UUID {
	return o.heroID
}

// MealID returns the identifier of the ordered meal.
func (o *Order) MealID() kernel.UUID {
	return o.mealID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Message returns the human-readable outcome or reason, possibly empty.
func (o *Order) Message() string {
	return o.message
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the terminal-transition timestamp, or nil while the
// order is still Pending or InProgress.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Version returns the optimistic concurrency counter as read from the store.
func (o *Order) Version() int64 {
	return o.version
}

// Start marks the order as claimed by a worker (Pending -> InProgress).
// Returns a state-conflict error for any other source state.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as fulfilled (InProgress -> Completed), records
// the outcome message, and stamps completedAt.
func (o *Order) Complete(message string) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.message = message
	o.stampCompleted()
	return nil
}

// Cancel marks the order as not fulfilled (Pending/InProgress -> Cancelled),
// records the reason, and stamps completedAt. A terminal order is left
// unchanged and a state-conflict error is returned.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.message = reason
	o.stampCompleted()
	return nil
}

func (o *Order) stampCompleted() {
	now := time.Now().UTC()
	o.completedAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setHeroID(heroID kernel.UUID) error {
	if err := heroID.Validate(); err != nil {
		return err
	}
	o.heroID = heroID
	return nil
}

func (o *Order) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}
	o.mealID = mealID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
