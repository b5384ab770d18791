package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "cafeteria/internal/adapters/out/postgres"
	"cafeteria/internal/adapters/out/postgres/herorepo"
	"cafeteria/internal/adapters/out/postgres/mealrepo"
	"cafeteria/internal/adapters/out/postgres/orderrepo"
	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/meal"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work and
// repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&herorepo.HeroDTO{}, &mealrepo.MealDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE heroes, meals, orders").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory produces isolated instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.HeroRepository())
	suite.NotNil(uow1.MealRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit/rollback without an active
// transaction fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestOrderRepository_AddGetRoundtrip verifies a freshly created order
// survives persistence with every field intact.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_AddGetRoundtrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
	suite.True(testOrder.HeroID().IsEqual(retrieved.HeroID()))
	suite.True(testOrder.MealID().IsEqual(retrieved.MealID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(testOrder.Message(), retrieved.Message())
	suite.Nil(retrieved.CompletedAt())
	suite.Equal(int64(1), retrieved.Version())
}

// TestOrderRepository_OptimisticUpdate verifies the version check: the writer
// holding the current version wins, a stale writer gets a version error.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_OptimisticUpdate() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	testOrder := createTestOrder()
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two copies read at the same version.
	copy1, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	copy2, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// First writer claims the order.
	err = copy1.Start()
	suite.Require().NoError(err)
	err = repo.Update(ctx, copy1)
	suite.Require().NoError(err)

	// Second writer still holds the old version and must lose.
	err = copy2.Cancel("changed my mind")
	suite.Require().NoError(err)
	err = repo.Update(ctx, copy2)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	// The stored row reflects the first write only, version bumped.
	retrieved, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Equal(int64(2), retrieved.Version())
}

// TestOrderRepository_UpdateMissingOrder verifies updating a deleted order
// reports not-found rather than a version conflict.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_UpdateMissingOrder() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	testOrder := createTestOrder()
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = repo.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = testOrder.Start()
	suite.Require().NoError(err)
	err = repo.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestOrderRepository_GetPendingOlderThan verifies the recovery query picks up
// only stale Pending orders.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_GetPendingOlderThan() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	staleOrder := restoreTestOrder(suite, order.Pending, time.Now().UTC().Add(-10*time.Minute))
	freshOrder := createTestOrder()
	claimedOrder := restoreTestOrder(suite, order.InProgress, time.Now().UTC().Add(-10*time.Minute))

	suite.Require().NoError(repo.Add(ctx, staleOrder))
	suite.Require().NoError(repo.Add(ctx, freshOrder))
	suite.Require().NoError(repo.Add(ctx, claimedOrder))

	stale, err := repo.GetPendingOlderThan(ctx, time.Now().UTC().Add(-time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(stale, 1)
	suite.True(staleOrder.ID().IsEqual(stale[0].ID()))
}

// TestOrderRepository_Delete verifies deletion is unconditional and repeat
// deletion reports not-found.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_Delete() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	testOrder := createTestOrder()
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = repo.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = repo.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = repo.Delete(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestHeroRepository_Update verifies catalog edits persist, including the
// renormalized restriction set, and that a missing hero reports not-found.
func (suite *UnitOfWorkIntegrationTestSuite) TestHeroRepository_Update() {
	ctx := context.Background()
	repo := suite.factory.Create().HeroRepository()

	testHero := createTestHero()
	err := repo.Add(ctx, testHero)
	suite.Require().NoError(err)

	err = testHero.Update("Renamed Hero", "Titan", []string{"Dairy", "gluten", "dairy"})
	suite.Require().NoError(err)
	err = repo.Update(ctx, testHero)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().HeroRepository().Get(ctx, testHero.ID())
	suite.Require().NoError(err)
	suite.Equal("Renamed Hero", retrieved.Name())
	suite.Equal("Titan", retrieved.Planet())
	suite.Equal([]string{"dairy", "gluten"}, retrieved.Restrictions())

	missing := createTestHero()
	err = repo.Update(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestMealRepository_Update verifies catalog edits persist and a missing meal
// reports not-found.
func (suite *UnitOfWorkIntegrationTestSuite) TestMealRepository_Update() {
	ctx := context.Background()
	repo := suite.factory.Create().MealRepository()

	testMeal := createTestMeal()
	err := repo.Add(ctx, testMeal)
	suite.Require().NoError(err)

	err = testMeal.Update("Updated Meal", []string{"noodles", "shrimp"}, 14.0, "Neptune", "spicy")
	suite.Require().NoError(err)
	err = repo.Update(ctx, testMeal)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().MealRepository().Get(ctx, testMeal.ID())
	suite.Require().NoError(err)
	suite.Equal("Updated Meal", retrieved.Name())
	suite.Equal([]string{"noodles", "shrimp"}, retrieved.Composition())
	suite.InDelta(14.0, retrieved.Price(), 0.001)
	suite.Equal("Neptune", retrieved.OriginPlanet())
	suite.Equal("spicy", retrieved.Description())

	missing := createTestMeal()
	err = repo.Update(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_CrossAggregateTransaction verifies hero, meal, and order
// writes commit atomically through one unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossAggregateTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testHero := createTestHero()
	testMeal := createTestMeal()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.HeroRepository().Add(ctx, testHero)
	suite.Require().NoError(err)
	err = uow.MealRepository().Add(ctx, testMeal)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), testHero.ID(), testMeal.ID(), "extra hot")
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedHero, err := newUow.HeroRepository().Get(ctx, testHero.ID())
	suite.Require().NoError(err)
	suite.Equal(testHero.Name(), retrievedHero.Name())

	retrievedMeal, err := newUow.MealRepository().Get(ctx, testMeal.ID())
	suite.Require().NoError(err)
	suite.Equal(testMeal.Name(), retrievedMeal.Name())

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testHero.ID().IsEqual(retrievedOrder.HeroID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards writes across
// all three repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testHero := createTestHero()
	testMeal := createTestMeal()
	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.HeroRepository().Add(ctx, testHero))
	suite.Require().NoError(uow.MealRepository().Add(ctx, testMeal))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.HeroRepository().Get(ctx, testHero.ID())
	suite.Require().Error(err, "Hero should not exist after rollback")

	_, err = newUow.MealRepository().Get(ctx, testMeal.ID())
	suite.Require().Error(err, "Meal should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories auto-commit when no
// transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
}

func createTestHero() *hero.Hero {
	testHero, _ := hero.NewHero(kernel.NewUUID(), "Test Hero", "Mars", []string{"peanuts"})
	return testHero
}

func createTestMeal() *meal.Meal {
	testMeal, _ := meal.NewMeal(
		kernel.NewUUID(), "Test Meal", []string{"rice", "tofu"}, 9.5, "Venus", "steamed")
	return testMeal
}

func createTestOrder() *order.Order {
	testOrder, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "no rush")
	return testOrder
}

func restoreTestOrder(
	suite *UnitOfWorkIntegrationTestSuite,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		status, "", createdAt, nil, 1,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
