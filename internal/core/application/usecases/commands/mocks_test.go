package commands_test

import (
	"context"
	"time"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockHeroRepository struct{ mock.Mock }

func (m *MockHeroRepository) Add(ctx context.Context, h *hero.Hero) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHeroRepository) Update(ctx context.Context, h *hero.Hero) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHeroRepository) Get(ctx context.Context, id kernel.UUID) (*hero.Hero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hero.Hero), args.Error(1)
}

func (m *MockHeroRepository) GetAll(ctx context.Context) ([]*hero.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hero.Hero), args.Error(1)
}

func (m *MockHeroRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMealRepository struct{ mock.Mock }

func (m *MockMealRepository) Add(ctx context.Context, ml *meal.Meal) error {
	args := m.Called(ctx, ml)
	return args.Error(0)
}

func (m *MockMealRepository) Update(ctx context.Context, ml *meal.Meal) error {
	args := m.Called(ctx, ml)
	return args.Error(0)
}

func (m *MockMealRepository) Get(ctx context.Context, id kernel.UUID) (*meal.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meal.Meal), args.Error(1)
}

func (m *MockMealRepository) GetAll(ctx context.Context) ([]*meal.Meal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*meal.Meal), args.Error(1)
}

func (m *MockMealRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPendingOlderThan(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every UoW shape in the package; handlers only call the
// repository accessors they declare.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) HeroRepository() ports.HeroRepository {
	args := m.Called()
	return args.Get(0).(ports.HeroRepository)
}

func (m *MockUoW) MealRepository() ports.MealRepository {
	args := m.Called()
	return args.Get(0).(ports.MealRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockHeroUoWFactory struct{ mock.Mock }

func (m *MockHeroUoWFactory) Create() commands.HeroUoW {
	args := m.Called()
	return args.Get(0).(commands.HeroUoW)
}

type MockMealUoWFactory struct{ mock.Mock }

func (m *MockMealUoWFactory) Create() commands.MealUoW {
	args := m.Called()
	return args.Get(0).(commands.MealUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWorkQueue struct{ mock.Mock }

func (m *MockWorkQueue) Enqueue(ctx context.Context, job ports.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockWorkQueue) Consume(ctx context.Context) (<-chan ports.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan ports.Delivery), args.Error(1)
}

func (m *MockWorkQueue) Close() error {
	args := m.Called()
	return args.Error(0)
}
