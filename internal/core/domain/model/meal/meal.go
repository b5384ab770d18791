// Package meal provides the Meal aggregate: a catalog item heroes can order.
// A meal's composition is a normalized ingredient set checked against hero
// restrictions when an order is processed.
package meal

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

// Domain errors for meal operations.
var (
	// ErrNameIsRequired is returned when attempting to create a meal without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrOriginPlanetIsRequired is returned when attempting to create a meal without an origin planet.
	ErrOriginPlanetIsRequired = errs.NewValueIsRequiredError("origin planet")
	// ErrCompositionIsRequired is returned when a meal has no ingredients after normalization.
	ErrCompositionIsRequired = errs.NewValueIsRequiredError("composition")
	// ErrMealIsNotConstructed is returned when using an improperly initialized Meal.
	ErrMealIsNotConstructed = errors.New("Meal must be created via NewMeal constructor")
)

// Meal represents a catalog item in the cafeteria.
//
// Business rules:
//   - Must have a valid UUID, non-empty name, and non-empty origin planet
//   - Composition is stored normalized (lowercase, trimmed, deduplicated,
//     sorted) and must contain at least one ingredient
//   - Price must not be negative
//   - Description is optional
type Meal struct {
	// id uniquely identifies the meal
	id kernel.UUID
	// name is the meal's display name
	name string
	// composition is the normalized set of ingredients making up the meal
	composition []string
	// price is the meal's price in credits
	price float64
	// originPlanet is where the recipe comes from
	originPlanet string
	// description is an optional human-readable summary
	description string
	// guard ensures the meal was properly constructed
	guard guard.ConstructorGuard
}

// NewMeal creates a new Meal with the specified parameters.
// The composition is normalized on the way in and must not end up empty.
func NewMeal(
	id kernel.UUID,
	name string,
	composition []string,
	price float64,
	originPlanet string,
	description string,
) (*Meal, error) {
	meal := &Meal{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		meal.setID(id),
		meal.setName(name),
		meal.setComposition(composition),
		meal.setPrice(price),
		meal.setOriginPlanet(originPlanet),
	); err != nil {
		return nil, err
	}

	meal.description = description
	return meal, nil
}

// RestoreMeal reconstructs a Meal aggregate from persistent storage.
// The same validation rules as NewMeal apply.
func RestoreMeal(
	id kernel.UUID,
	name string,
	composition []string,
	price float64,
	originPlanet string,
	description string,
) (*Meal, error) {
	return NewMeal(id, name, composition, price, originPlanet, description)
}

// Validate ensures the Meal instance was created through NewMeal.
func (m *Meal) Validate() error {
	if m == nil {
		return ErrMealIsNotConstructed
	}
	return m.guard.Validate(ErrMealIsNotConstructed)
}

// ID returns the meal's unique identifier.
func (m *Meal) ID() kernel.UUID {
	return m.id
}

// Name returns the meal's display name.
func (m *Meal) Name() string {
	return m.name
}

// Composition returns a copy of the normalized ingredient set.
func (m *Meal) Composition() []string {
	return slices.Clone(m.composition)
}

// Price returns the meal's price in credits.
func (m *Meal) Price() float64 {
	return m.price
}

// OriginPlanet returns the planet the recipe comes from.
func (m *Meal) OriginPlanet() string {
	return m.originPlanet
}

// Description returns the optional description, which may be empty.
func (m *Meal) Description() string {
	return m.description
}

// Update replaces the meal's mutable fields; identity never changes.
// The new composition is normalized and must not end up empty.
func (m *Meal) Update(
	name string,
	composition []string,
	price float64,
	originPlanet string,
	description string,
) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		m.setName(name),
		m.setComposition(composition),
		m.setPrice(price),
		m.setOriginPlanet(originPlanet),
	); err != nil {
		return err
	}

	m.description = description
	return nil
}

func (m *Meal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Meal) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Meal) setComposition(composition []string) error {
	normalized := kernel.NormalizeSet(composition)
	if len(normalized) == 0 {
		return ErrCompositionIsRequired
	}
	m.composition = normalized
	return nil
}

func (m *Meal) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", price))
	}
	m.price = price
	return nil
}

func (m *Meal) setOriginPlanet(originPlanet string) error {
	if strings.TrimSpace(originPlanet) == "" {
		return ErrOriginPlanetIsRequired
	}
	m.originPlanet = originPlanet
	return nil
}
