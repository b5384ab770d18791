package commands_test

import (
	"errors"
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	heroID := kernel.NewUUID()
	mealID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(orderID, heroID, mealID, "")

	testHero, _ := hero.NewHero(heroID, "Peter Parker", "Earth", nil)
	testMeal, _ := meal.NewMeal(mealID, "Shawarma", []string{"chicken"}, 9.5, "Earth", "")

	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, heroID).Return(testHero, nil).Once(),
		uow.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, mealID).Return(testMeal, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	queue := new(MockWorkQueue)
	queue.On("Enqueue", ctx, ports.Job{OrderID: orderID.String()}).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	heroRepo.AssertExpectations(t)
	mealRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	queue := new(MockWorkQueue)
	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_HeroNotFound(t *testing.T) {
	ctx := t.Context()
	heroID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), heroID, kernel.NewUUID(), "")

	heroRepo := new(MockHeroRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, heroID).
			Return(nil, errs.NewObjectNotFoundError("hero", heroID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	queue := new(MockWorkQueue)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	queue.AssertNotCalled(t, "Enqueue")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_MealNotFound(t *testing.T) {
	ctx := t.Context()
	heroID := kernel.NewUUID()
	mealID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), heroID, mealID, "")

	testHero, _ := hero.NewHero(heroID, "Peter Parker", "Earth", nil)

	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, heroID).Return(testHero, nil).Once(),
		uow.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, mealID).
			Return(nil, errs.NewObjectNotFoundError("meal", mealID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	queue := new(MockWorkQueue)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	queue.AssertNotCalled(t, "Enqueue")
}

func TestCreateOrderCommandHandler_Handle_EnqueueErrorAfterCommit(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	heroID := kernel.NewUUID()
	mealID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(orderID, heroID, mealID, "")

	testHero, _ := hero.NewHero(heroID, "Peter Parker", "Earth", nil)
	testMeal, _ := meal.NewMeal(mealID, "Shawarma", []string{"chicken"}, 9.5, "Earth", "")

	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, heroID).Return(testHero, nil).Once(),
		uow.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, mealID).Return(testMeal, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	queue := new(MockWorkQueue)
	queue.On("Enqueue", ctx, ports.Job{OrderID: orderID.String()}).
		Return(errors.New("broker unavailable")).
		Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)

	// The row committed; the caller must report degraded creation, not failure.
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEnqueueFailed)
	uow.AssertExpectations(t)
}
