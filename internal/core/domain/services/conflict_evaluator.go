package services

import (
	"cafeteria/internal/core/domain/model/kernel"
)

// ConflictEvaluator is a domain service that decides whether a meal can be
// served to a hero. It computes the case-insensitive intersection of the
// hero's restriction set and the meal's composition set.
//
// The evaluator is pure: no side effects, no I/O, deterministic output.
//
// Example usage:
//
//	evaluator := NewConflictEvaluator()
//	conflicts := evaluator.Conflicts(hero.Restrictions(), meal.Composition())
//	if len(conflicts) > 0 {
//	    // the order must be cancelled; conflicts names every offending item
//	}
type ConflictEvaluator struct{}

// NewConflictEvaluator creates a new ConflictEvaluator instance.
func NewConflictEvaluator() ConflictEvaluator {
	return ConflictEvaluator{}
}

// Conflicts returns every item present in both sets, compared
// case-insensitively. Inputs are normalized defensively, so callers may pass
// raw as well as pre-normalized sets. The result is sorted and deduplicated;
// an empty result means the meal is safe for the hero.
func (ConflictEvaluator) Conflicts(restrictions, composition []string) []string {
	restricted := make(map[string]struct{}, len(restrictions))
	for _, item := range kernel.NormalizeSet(restrictions) {
		restricted[item] = struct{}{}
	}

	conflicts := make([]string, 0)
	for _, item := range kernel.NormalizeSet(composition) {
		if _, ok := restricted[item]; ok {
			conflicts = append(conflicts, item)
		}
	}

	return conflicts
}
