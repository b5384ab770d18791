package order

import (
	"fmt"

	"cafeteria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders always
// follow the fulfillment workflow:
//
//	Pending ──> InProgress ──> Completed
//	   │             │
//	   └──────┬──────┘
//	          v
//	      Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	// Orders in this status are waiting to be picked up by a worker.
	Pending

	// InProgress indicates a worker has claimed the order and is preparing it.
	InProgress

	// Completed indicates the order was fulfilled without a dietary conflict.
	// Terminal.
	Completed

	// Cancelled indicates the order was not fulfilled: a conflict was found,
	// a referenced hero or meal disappeared, or the caller cancelled it.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// Validate checks that the Status is one of the four defined states.
// Unknown (0) and out-of-range values are invalid. Used when restoring
// orders from the database or parsing statuses from external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status
// ("PENDING", "IN_PROGRESS", "COMPLETED", "CANCELLED").
// Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (worker claims the order)
//
// Any other source state is rejected, including InProgress itself: a
// redelivered job for an already claimed order must not re-claim it.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start processing", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (no dietary conflict found)
//
// Orders cannot jump from Pending straight to Completed; a worker must have
// claimed them first.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (caller cancels before processing)
//   - InProgress -> Cancelled (conflict found, missing reference, or caller cancels)
//
// Cancelling a terminal order is rejected; the caller observes a
// state-conflict error and the order stays unchanged.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}
