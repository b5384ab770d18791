package commands_test

import (
	"context"
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/services"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type processFixture struct {
	orderID kernel.UUID
	heroID  kernel.UUID
	mealID  kernel.UUID

	order *order.Order
	hero  *hero.Hero
	meal  *meal.Meal
}

func newProcessFixture(t *testing.T, restrictions, composition []string) processFixture {
	t.Helper()

	f := processFixture{
		orderID: kernel.NewUUID(),
		heroID:  kernel.NewUUID(),
		mealID:  kernel.NewUUID(),
	}

	var err error
	f.order, err = order.NewOrder(f.orderID, f.heroID, f.mealID, "")
	require.NoError(t, err)
	f.hero, err = hero.NewHero(f.heroID, "Peter Parker", "Earth", restrictions)
	require.NoError(t, err)
	f.meal, err = meal.NewMeal(f.mealID, "Shawarma", composition, 9.5, "Earth", "")
	require.NoError(t, err)

	return f
}

func newProcessHandler(factory *MockUoWFactory) commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(factory, services.NewConflictEvaluator(), nil)
}

// expectClaim wires the first transaction: load the pending order and move it
// to InProgress.
func expectClaim(ctx context.Context, uow *MockUoW, repo *MockOrderRepository, f processFixture) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestProcessOrderCommandHandler_Handle_CompletesSafeOrder(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, []string{"peanuts"}, []string{"chicken", "garlic"})
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	claimRepo := new(MockOrderRepository)
	claimUoW := new(MockUoW)
	expectClaim(ctx, claimUoW, claimRepo, f)

	decideRepo := new(MockOrderRepository)
	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	decideUoW := new(MockUoW)
	mock.InOrder(
		decideUoW.On("Begin", ctx).Return(nil).Once(),
		decideUoW.On("OrderRepository").Return(decideRepo).Once(),
		decideRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		decideUoW.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, f.heroID).Return(f.hero, nil).Once(),
		decideUoW.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, f.mealID).Return(f.meal, nil).Once(),
		decideRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		decideUoW.On("Commit", ctx).Return(nil).Once(),
		decideUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(decideUoW).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, f.order.Status())
	assert.Equal(t, "success", f.order.Message())
	assert.NotNil(t, f.order.CompletedAt())
	claimUoW.AssertExpectations(t)
	decideUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_CancelsOnConflict(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, []string{"Peanuts", "gluten"}, []string{"peanuts", "bread", "Gluten"})
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	claimRepo := new(MockOrderRepository)
	claimUoW := new(MockUoW)
	expectClaim(ctx, claimUoW, claimRepo, f)

	decideRepo := new(MockOrderRepository)
	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	decideUoW := new(MockUoW)
	mock.InOrder(
		decideUoW.On("Begin", ctx).Return(nil).Once(),
		decideUoW.On("OrderRepository").Return(decideRepo).Once(),
		decideRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		decideUoW.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, f.heroID).Return(f.hero, nil).Once(),
		decideUoW.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, f.mealID).Return(f.meal, nil).Once(),
		decideRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		decideUoW.On("Commit", ctx).Return(nil).Once(),
		decideUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(decideUoW).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, f.order.Status())
	assert.Equal(t, "hero is allergic to: gluten, peanuts", f.order.Message())
}

func TestProcessOrderCommandHandler_Handle_CancelsOnMissingMeal(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, nil, []string{"chicken"})
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	claimRepo := new(MockOrderRepository)
	claimUoW := new(MockUoW)
	expectClaim(ctx, claimUoW, claimRepo, f)

	decideRepo := new(MockOrderRepository)
	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	decideUoW := new(MockUoW)
	mock.InOrder(
		decideUoW.On("Begin", ctx).Return(nil).Once(),
		decideUoW.On("OrderRepository").Return(decideRepo).Once(),
		decideRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		decideUoW.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, f.heroID).Return(f.hero, nil).Once(),
		decideUoW.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, f.mealID).
			Return(nil, errs.NewObjectNotFoundError("meal", f.mealID)).
			Once(),
		decideRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		decideUoW.On("Commit", ctx).Return(nil).Once(),
		decideUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(decideUoW).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, f.order.Status())
	assert.Equal(t, "referenced hero or meal no longer exists", f.order.Message())
}

func TestProcessOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewProcessOrderCommand(orderID)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestProcessOrderCommandHandler_Handle_TerminalOrderIsNoOp(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, nil, []string{"chicken"})
	require.NoError(t, f.order.Start())
	require.NoError(t, f.order.Complete("success"))
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	// A duplicate job for finished work is dropped without an error so the
	// caller acks it.
	require.NoError(t, err)
	assert.Equal(t, order.Completed, f.order.Status())
	repo.AssertNotCalled(t, "Update")
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestProcessOrderCommandHandler_Handle_RedeliveredInProgressOrder(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, nil, []string{"chicken"})
	require.NoError(t, f.order.Start())
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	// Claim phase sees InProgress and falls through without an Update.
	claimRepo := new(MockOrderRepository)
	claimUoW := new(MockUoW)
	mock.InOrder(
		claimUoW.On("Begin", ctx).Return(nil).Once(),
		claimUoW.On("OrderRepository").Return(claimRepo).Once(),
		claimRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		claimUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	decideRepo := new(MockOrderRepository)
	heroRepo := new(MockHeroRepository)
	mealRepo := new(MockMealRepository)
	decideUoW := new(MockUoW)
	mock.InOrder(
		decideUoW.On("Begin", ctx).Return(nil).Once(),
		decideUoW.On("OrderRepository").Return(decideRepo).Once(),
		decideRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		decideUoW.On("HeroRepository").Return(heroRepo).Once(),
		heroRepo.On("Get", ctx, f.heroID).Return(f.hero, nil).Once(),
		decideUoW.On("MealRepository").Return(mealRepo).Once(),
		mealRepo.On("Get", ctx, f.mealID).Return(f.meal, nil).Once(),
		decideRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		decideUoW.On("Commit", ctx).Return(nil).Once(),
		decideUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(decideUoW).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, f.order.Status())
	claimRepo.AssertNotCalled(t, "Update")
	claimUoW.AssertNotCalled(t, "Commit")
}

func TestProcessOrderCommandHandler_Handle_CancelledDuringPrep(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, nil, []string{"chicken"})
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	claimRepo := new(MockOrderRepository)
	claimUoW := new(MockUoW)
	expectClaim(ctx, claimUoW, claimRepo, f)

	// Simulate a cancellation landing between the claim and the decision.
	prepTimer := func(context.Context) error {
		return f.order.Cancel("changed my mind")
	}

	decideRepo := new(MockOrderRepository)
	decideUoW := new(MockUoW)
	mock.InOrder(
		decideUoW.On("Begin", ctx).Return(nil).Once(),
		decideUoW.On("OrderRepository").Return(decideRepo).Once(),
		decideRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		decideUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(decideUoW).Once()

	h := commands.NewProcessOrderCommandHandler(factory, services.NewConflictEvaluator(), prepTimer)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, f.order.Status())
	assert.Equal(t, "changed my mind", f.order.Message())
	decideRepo.AssertNotCalled(t, "Update")
	decideUoW.AssertNotCalled(t, "Commit")
}

func TestProcessOrderCommandHandler_Handle_ClaimVersionConflict(t *testing.T) {
	ctx := t.Context()
	f := newProcessFixture(t, nil, []string{"chicken"})
	cmd, _ := commands.NewProcessOrderCommand(f.orderID)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewVersionIsInvalidErrorWithCause("order")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newProcessHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}
