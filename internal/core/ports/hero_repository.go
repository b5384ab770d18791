// Package ports defines the contracts between the application core and its
// adapters: persistence repositories, the unit of work, and the durable work
// queue feeding the order worker pool.
package ports

import (
	"context"

	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"
)

// HeroRepository defines the persistence contract for hero aggregates.
type HeroRepository interface {
	// Add persists a new hero aggregate to storage.
	Add(ctx context.Context, aggregate *hero.Hero) error

	// Update persists an administrative edit to an existing hero.
	// Returns an error wrapping errs.ErrObjectNotFound when the hero does not exist.
	Update(ctx context.Context, aggregate *hero.Hero) error

	// Get retrieves a hero by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when the hero does not exist.
	Get(ctx context.Context, id kernel.UUID) (*hero.Hero, error)

	// GetAll retrieves every hero in the catalog.
	GetAll(ctx context.Context) ([]*hero.Hero, error)

	// Delete removes a hero unconditionally. Orders referencing the hero are
	// left in place; the worker cancels them when it finds the dangling
	// reference during processing.
	Delete(ctx context.Context, id kernel.UUID) error
}
