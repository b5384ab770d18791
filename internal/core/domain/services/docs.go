// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates.
//
// ConflictEvaluator decides whether a hero can consume a meal by intersecting
// the hero's dietary restrictions with the meal's ingredient composition. It
// is kept pure so the fulfillment decision can be unit-tested without any
// infrastructure.
package services
