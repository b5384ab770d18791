// Package orderrepo implements order persistence: DTO mapping and a
// GORM-based repository enforcing the optimistic version check that
// serializes workers and user cancellations writing the same order.
package orderrepo

import (
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed for the recovery job's pending scan; version is the
// optimistic lock counter checked on every update.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HeroID      uuid.UUID `gorm:"type:uuid;index"`
	MealID      uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	Message     string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Version     int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		HeroID:      aggregate.HeroID().Bytes(),
		MealID:      aggregate.MealID().Bytes(),
		Status:      int(aggregate.Status()),
		Message:     aggregate.Message(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Version:     aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	heroID, err := kernel.UUIDFromBytes(dto.HeroID[:])
	if err != nil {
		return nil, err
	}
	mealID, err := kernel.UUIDFromBytes(dto.MealID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		heroID,
		mealID,
		order.Status(dto.Status),
		dto.Message,
		dto.CreatedAt,
		dto.CompletedAt,
		dto.Version,
	)
}
