package cmd

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"cafeteria/internal/adapters/in/http"
	"cafeteria/internal/adapters/out/postgres"
	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/services"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/jobs"
	"cafeteria/internal/workers"

	"gorm.io/gorm"
)

// Preparation delay bounds for the worker-side processing handler.
const (
	prepDelayMin = 1 * time.Second
	prepDelayMax = 5 * time.Second
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      ports.WorkQueue
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, queue ports.WorkQueue, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateHeroCommandHandler() commands.CreateHeroCommandHandler {
	var f commands.HeroUoWFactory = FuncHeroUoWFactory(func() commands.HeroUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateHeroCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateHeroCommandHandler() commands.UpdateHeroCommandHandler {
	var f commands.HeroUoWFactory = FuncHeroUoWFactory(func() commands.HeroUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateHeroCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteHeroCommandHandler() commands.DeleteHeroCommandHandler {
	var f commands.HeroUoWFactory = FuncHeroUoWFactory(func() commands.HeroUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteHeroCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMealCommandHandler() commands.CreateMealCommandHandler {
	var f commands.MealUoWFactory = FuncMealUoWFactory(func() commands.MealUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMealCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMealCommandHandler() commands.UpdateMealCommandHandler {
	var f commands.MealUoWFactory = FuncMealUoWFactory(func() commands.MealUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMealCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMealCommandHandler() commands.DeleteMealCommandHandler {
	var f commands.MealUoWFactory = FuncMealUoWFactory(func() commands.MealUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMealCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.queue)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f, services.NewConflictEvaluator(), randomPrepTimer)
}

func (c *CompositionRoot) CreateRequeuePendingOrdersCommandHandler() commands.RequeuePendingOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequeuePendingOrdersCommandHandler(f, c.queue)
}

func (c *CompositionRoot) CreateGetAllHeroesQueryHandler() queries.GetAllHeroesQueryHandler {
	return queries.NewGetAllHeroesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHeroByIDQueryHandler() queries.GetHeroByIDQueryHandler {
	return queries.NewGetHeroByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMealsQueryHandler() queries.GetAllMealsQueryHandler {
	return queries.NewGetAllMealsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMealByIDQueryHandler() queries.GetMealByIDQueryHandler {
	return queries.NewGetMealByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server with every handler it serves.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateHeroCommandHandler(),
		c.CreateUpdateHeroCommandHandler(),
		c.CreateDeleteHeroCommandHandler(),
		c.CreateCreateMealCommandHandler(),
		c.CreateUpdateMealCommandHandler(),
		c.CreateDeleteMealCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetAllHeroesQueryHandler(),
		c.CreateGetHeroByIDQueryHandler(),
		c.CreateGetAllMealsQueryHandler(),
		c.CreateGetMealByIDQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
	)
}

// CreateOrderWorkerPool assembles the consumer side of the pipeline.
func (c *CompositionRoot) CreateOrderWorkerPool(workerCount int) (*workers.OrderWorkerPool, error) {
	handler := c.CreateProcessOrderCommandHandler()
	return workers.NewOrderWorkerPool(c.queue, handler, workerCount, c.logger)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRequeuePendingOrdersCommandHandler(), c.logger)
}

// randomPrepTimer simulates meal preparation with a bounded random delay.
// Honors context cancellation so shutdown never waits on a sleeping worker.
func randomPrepTimer(ctx context.Context) error {
	delay := prepDelayMin + rand.N(prepDelayMax-prepDelayMin)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type FuncHeroUoWFactory func() commands.HeroUoW

func (f FuncHeroUoWFactory) Create() commands.HeroUoW {
	return f()
}

type FuncMealUoWFactory func() commands.MealUoW

func (f FuncMealUoWFactory) Create() commands.MealUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
