// Package mealrepo implements meal persistence: DTO mapping and a GORM-based
// repository for the meal aggregate.
package mealrepo

import (
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MealDTO represents the database structure for persisting meal aggregates.
// Composition is stored as a postgres text[] column.
type MealDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"not null"`
	Composition  pq.StringArray `gorm:"type:text[]"`
	Price        float64
	OriginPlanet string `gorm:"not null"`
	Description  string
}

// TableName specifies the database table name for meal entities.
func (MealDTO) TableName() string {
	return "meals"
}

func fromDomain(aggregate *meal.Meal) MealDTO {
	return MealDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Composition:  aggregate.Composition(),
		Price:        aggregate.Price(),
		OriginPlanet: aggregate.OriginPlanet(),
		Description:  aggregate.Description(),
	}
}

func toDomain(dto MealDTO) (*meal.Meal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return meal.RestoreMeal(id, dto.Name, dto.Composition, dto.Price, dto.OriginPlanet, dto.Description)
}
