// Package herorepo implements hero persistence: DTO mapping and a GORM-based
// repository for the hero aggregate.
package herorepo

import (
	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HeroDTO represents the database structure for persisting hero aggregates.
// Restrictions are stored as a postgres text[] column.
type HeroDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"not null"`
	Planet       string         `gorm:"not null"`
	Restrictions pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for hero entities.
func (HeroDTO) TableName() string {
	return "heroes"
}

func fromDomain(aggregate *hero.Hero) HeroDTO {
	return HeroDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Planet:       aggregate.Planet(),
		Restrictions: aggregate.Restrictions(),
	}
}

func toDomain(dto HeroDTO) (*hero.Hero, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return hero.RestoreHero(id, dto.Name, dto.Planet, dto.Restrictions)
}
