package queries

import (
	"errors"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/guard"
)

var ErrGetMealByIDQueryIsNotConstructed = errors.New(
	"GetMealByIDQuery must be created via NewGetMealByIDQuery constructor",
)

// GetMealByIDQuery retrieves a single meal by identifier.
type GetMealByIDQuery struct { //nolint:recvcheck //using for validation
	mealID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMealByIDQuery creates a query for one meal.
func NewGetMealByIDQuery(mealID kernel.UUID) (GetMealByIDQuery, error) {
	if err := mealID.Validate(); err != nil {
		return GetMealByIDQuery{}, err
	}

	return GetMealByIDQuery{
		mealID: mealID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMealByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetMealByIDQueryIsNotConstructed)
}

// MealID returns the identifier to look up.
func (q GetMealByIDQuery) MealID() kernel.UUID {
	return q.mealID
}
