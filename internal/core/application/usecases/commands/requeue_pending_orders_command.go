package commands

import (
	"errors"
	"time"

	"cafeteria/internal/pkg/guard"
)

var (
	ErrRequeuePendingOrdersCommandIsNotConstructed = errors.New(
		"RequeuePendingOrdersCommand must be created via NewRequeuePendingOrdersCommand constructor",
	)
	ErrOlderThanIsNotPositive = errors.New("olderThan must be positive")
)

// RequeuePendingOrdersCommand asks the recovery job to re-publish jobs for
// orders stuck in Pending longer than olderThan. The cutoff keeps the job
// from re-enqueueing orders whose original publish is still in flight.
type RequeuePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRequeuePendingOrdersCommand creates a recovery command with the given
// staleness cutoff.
func NewRequeuePendingOrdersCommand(olderThan time.Duration) (RequeuePendingOrdersCommand, error) {
	if olderThan <= 0 {
		return RequeuePendingOrdersCommand{}, ErrOlderThanIsNotPositive
	}

	return RequeuePendingOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequeuePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRequeuePendingOrdersCommandIsNotConstructed)
}

// OlderThan returns the staleness cutoff.
func (c RequeuePendingOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
