// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cafeteria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HeroRepoFactory provides access to the hero repository within a transaction.
	HeroRepoFactory interface {
		HeroRepository() ports.HeroRepository
	}

	// MealRepoFactory provides access to the meal repository within a transaction.
	MealRepoFactory interface {
		MealRepository() ports.MealRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HeroUoW manages transactions for hero-only operations.
	HeroUoW interface {
		TxManager
		HeroRepoFactory
	}

	// HeroUoWFactory creates new hero unit of work instances.
	HeroUoWFactory interface {
		Create() HeroUoW
	}

	// MealUoW manages transactions for meal-only operations.
	MealUoW interface {
		TxManager
		MealRepoFactory
	}

	// MealUoWFactory creates new meal unit of work instances.
	MealUoWFactory interface {
		Create() MealUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across hero, meal, and order aggregates.
	// Used by operations that must read catalog entries and write orders
	// within a single transaction, such as order creation and processing.
	UoW interface {
		TxManager
		HeroRepoFactory
		MealRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
