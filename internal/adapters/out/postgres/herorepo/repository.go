package herorepo

import (
	"context"
	"errors"

	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHeroRepository implements ports.HeroRepository using GORM.
type GormHeroRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHeroRepository creates a new GORM hero repository.
func NewGormHeroRepository(db *gorm.DB, tracker aggregateTracker) *GormHeroRepository {
	return &GormHeroRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hero to the database.
func (r *GormHeroRepository) Add(ctx context.Context, aggregate *hero.Hero) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an administrative edit to an existing hero.
// Returns an error wrapping errs.ErrObjectNotFound when no row was updated.
func (r *GormHeroRepository) Update(ctx context.Context, aggregate *hero.Hero) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&HeroDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":         dto.Name,
			"planet":       dto.Planet,
			"restrictions": dto.Restrictions,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hero", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hero by ID.
func (r *GormHeroRepository) Get(ctx context.Context, id kernel.UUID) (*hero.Hero, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HeroDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hero", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every hero in the catalog.
func (r *GormHeroRepository) GetAll(ctx context.Context) ([]*hero.Hero, error) {
	var dtos []HeroDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	heroes := make([]*hero.Hero, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		heroes = append(heroes, h)
	}

	return heroes, nil
}

// Delete removes a hero unconditionally.
// Returns an error wrapping errs.ErrObjectNotFound when no row was deleted.
func (r *GormHeroRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&HeroDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hero", id.String())
	}

	return nil
}
