package mealrepo

import (
	"context"
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMealRepository implements ports.MealRepository using GORM.
type GormMealRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMealRepository creates a new GORM meal repository.
func NewGormMealRepository(db *gorm.DB, tracker aggregateTracker) *GormMealRepository {
	return &GormMealRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new meal to the database.
func (r *GormMealRepository) Add(ctx context.Context, aggregate *meal.Meal) error {
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

// Update saves an administrative edit to an existing meal.
// Returns an error wrapping errs.ErrObjectNotFound when no row was updated.
func (r *GormMealRepository) Update(ctx context.Context, aggregate *meal.Meal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MealDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"composition":   dto.Composition,
			"price":         dto.Price,
			"origin_planet": dto.OriginPlanet,
			"description":   dto.Description,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("meal", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a meal by ID.
func (r *GormMealRepository) Get(ctx context.Context, id kernel.UUID) (*meal.Meal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MealDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("meal", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every meal in the catalog.
func (r *GormMealRepository) GetAll(ctx context.Context) ([]*meal.Meal, error) {
	var dtos []MealDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	meals := make([]*meal.Meal, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}

	return meals, nil
}

// Delete removes a meal unconditionally.
// Returns an error wrapping errs.ErrObjectNotFound when no row was deleted.
func (r *GormMealRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MealDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("meal", id.String())
	}

	return nil
}
