package ports

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"
)

// MealRepository defines the persistence contract for meal aggregates.
type MealRepository interface {
	// Add persists a new meal aggregate to storage.
	Add(ctx context.Context, aggregate *meal.Meal) error

	// Update persists an administrative edit to an existing meal.
	// Returns an error wrapping errs.ErrObjectNotFound when the meal does not exist.
	Update(ctx context.Context, aggregate *meal.Meal) error

	// Get retrieves a meal by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when the meal does not exist.
	Get(ctx context.Context, id kernel.UUID) (*meal.Meal, error)

	// GetAll retrieves every meal in the catalog.
	GetAll(ctx context.Context) ([]*meal.Meal, error)

	// Delete removes a meal unconditionally, mirroring HeroRepository.Delete.
	Delete(ctx context.Context, id kernel.UUID) error
}
