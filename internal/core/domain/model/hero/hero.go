// Package hero provides the Hero aggregate: the requester placing meal orders.
// A hero carries a normalized set of dietary restrictions used by the order
// pipeline's conflict check.
package hero

import (
	"errors"
	"slices"
	"strings"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

// Domain errors for hero operations.
var (
	// ErrNameIsRequired is returned when attempting to create a hero without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPlanetIsRequired is returned when attempting to create a hero without a home planet.
	ErrPlanetIsRequired = errs.NewValueIsRequiredError("planet")
	// ErrHeroIsNotConstructed is returned when using an improperly initialized Hero.
	ErrHeroIsNotConstructed = errors.New("Hero must be created via NewHero constructor")
)

// Hero represents a requester who places meal orders.
//
// Business rules:
//   - Must have a valid UUID, non-empty name, and non-empty home planet
//   - Dietary restrictions are stored normalized: lowercased, trimmed,
//     deduplicated, and sorted, so conflict checks are case-insensitive
//   - Restrictions may be empty (a hero without dietary limits)
//
// A hero referenced by an order may still be deleted; the order pipeline
// treats that as a processing-time cancellation, not a creation-time error.
type Hero struct {
	// id uniquely identifies the hero
	id kernel.UUID
	// name is the hero's display name
	name string
	// planet is the hero's home planet
	planet string
	// restrictions is the normalized set of ingredients the hero cannot consume
	restrictions []string
	// guard ensures the hero was properly constructed
	guard guard.ConstructorGuard
}

// NewHero creates a new Hero with the specified parameters.
// Restrictions are normalized on the way in; duplicates and surrounding
// whitespace are removed and comparison becomes case-insensitive.
//
// Returns a validation error if the id, name, or planet is invalid.
func NewHero(id kernel.UUID, name, planet string, restrictions []string) (*Hero, error) {
	hero := &Hero{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		hero.setID(id),
		hero.setName(name),
		hero.setPlanet(planet),
	); err != nil {
		return nil, err
	}

	hero.restrictions = kernel.NormalizeSet(restrictions)
	return hero, nil
}

// RestoreHero reconstructs a Hero aggregate from persistent storage.
// The same validation rules as NewHero apply.
func RestoreHero(id kernel.UUID, name, planet string, restrictions []string) (*Hero, error) {
	return NewHero(id, name, planet, restrictions)
}

// Validate ensures the Hero instance was created through NewHero.
func (h *Hero) Validate() error {
	if h == nil {
		return ErrHeroIsNotConstructed
	}
	return h.guard.Validate(ErrHeroIsNotConstructed)
}

// ID returns the hero's unique identifier.
func (h *Hero) ID() kernel.UUID {
	return h.id
}

// Name returns the hero's display name.
func (h *Hero) Name() string {
	return h.name
}

// Planet returns the hero's home planet.
func (h *Hero) Planet() string {
	return h.planet
}

// Restrictions returns a copy of the normalized restriction set.
func (h *Hero) Restrictions() []string {
	return slices.Clone(h.restrictions)
}

// Update replaces the hero's mutable fields; identity never changes.
// Restrictions are normalized the same way as at creation, so an updated
// restriction set feeds conflict checks for not-yet-processed orders.
func (h *Hero) Update(name, planet string, restrictions []string) error {
	if err := h.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		h.setName(name),
		h.setPlanet(planet),
	); err != nil {
		return err
	}

	h.restrictions = kernel.NormalizeSet(restrictions)
	return nil
}

func (h *Hero) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hero) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	h.name = name
	return nil
}

func (h *Hero) setPlanet(planet string) error {
	if strings.TrimSpace(planet) == "" {
		return ErrPlanetIsRequired
	}
	h.planet = planet
	return nil
}
