// Package http exposes the service over REST: catalog CRUD for heroes and
// meals, order submission, polling, and the cancel/delete action endpoint.
package http

import (
	"net/http"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createHeroHandler  commands.CreateHeroCommandHandler
	updateHeroHandler  commands.UpdateHeroCommandHandler
	deleteHeroHandler  commands.DeleteHeroCommandHandler
	createMealHandler  commands.CreateMealCommandHandler
	updateMealHandler  commands.UpdateMealCommandHandler
	deleteMealHandler  commands.DeleteMealCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getAllHeroesHandler queries.GetAllHeroesQueryHandler
	getHeroByIDHandler  queries.GetHeroByIDQueryHandler
	getAllMealsHandler  queries.GetAllMealsQueryHandler
	getMealByIDHandler  queries.GetMealByIDQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createHeroHandler commands.CreateHeroCommandHandler,
	updateHeroHandler commands.UpdateHeroCommandHandler,
	deleteHeroHandler commands.DeleteHeroCommandHandler,
	createMealHandler commands.CreateMealCommandHandler,
	updateMealHandler commands.UpdateMealCommandHandler,
	deleteMealHandler commands.DeleteMealCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllHeroesHandler queries.GetAllHeroesQueryHandler,
	getHeroByIDHandler queries.GetHeroByIDQueryHandler,
	getAllMealsHandler queries.GetAllMealsQueryHandler,
	getMealByIDHandler queries.GetMealByIDQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createHeroHandler:   createHeroHandler,
		updateHeroHandler:   updateHeroHandler,
		deleteHeroHandler:   deleteHeroHandler,
		createMealHandler:   createMealHandler,
		updateMealHandler:   updateMealHandler,
		deleteMealHandler:   deleteMealHandler,
		createOrderHandler:  createOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getAllHeroesHandler: getAllHeroesHandler,
		getHeroByIDHandler:  getHeroByIDHandler,
		getAllMealsHandler:  getAllMealsHandler,
		getMealByIDHandler:  getMealByIDHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getOrderByIDHandler: getOrderByIDHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/heroes", s.CreateHero)
	api.GET("/heroes", s.GetHeroes)
	api.GET("/heroes/:id", s.GetHero)
	api.PUT("/heroes/:id", s.UpdateHero)
	api.DELETE("/heroes/:id", s.DeleteHero)

	api.POST("/meals", s.CreateMeal)
	api.GET("/meals", s.GetMeals)
	api.GET("/meals/:id", s.GetMeal)
	api.PUT("/meals/:id", s.UpdateMeal)
	api.DELETE("/meals/:id", s.DeleteMeal)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/actions", s.OrderAction)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, "ok", nil)
}
