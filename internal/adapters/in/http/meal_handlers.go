package http

import (
	"net/http"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type mealRequest struct {
	Name         string   `json:"name"`
	Composition  []string `json:"composition"`
	Price        float64  `json:"price"`
	OriginPlanet string   `json:"origin_planet"`
	Description  string   `json:"description"`
}

type mealResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Composition  []string `json:"composition"`
	Price        float64  `json:"price"`
	OriginPlanet string   `json:"origin_planet"`
	Description  string   `json:"description,omitempty"`
}

func mealToResponse(m queries.GetAllMealsQueryResponse) mealResponse {
	return mealResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Composition:  m.Composition,
		Price:        m.Price,
		OriginPlanet: m.OriginPlanet,
		Description:  m.Description,
	}
}

// CreateMeal handles POST /api/v1/meals.
func (s *Server) CreateMeal(ctx echo.Context) error {
	var req mealRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	mealID := kernel.NewUUID()
	cmd, err := commands.NewCreateMealCommand(
		mealID, req.Name, req.Composition, req.Price, req.OriginPlanet, req.Description)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createMealHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "meal created", map[string]string{"id": mealID.String()})
}

// GetMeals handles GET /api/v1/meals.
func (s *Server) GetMeals(ctx echo.Context) error {
	query := queries.NewGetAllMealsQuery()

	meals, err := s.getAllMealsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, mealToResponse(m))
	}

	return respond(ctx, http.StatusOK, "meals retrieved", response)
}

// GetMeal handles GET /api/v1/meals/:id.
func (s *Server) GetMeal(ctx echo.Context) error {
	mealID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid meal id")
	}

	query, err := queries.NewGetMealByIDQuery(mealID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	m, err := s.getMealByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "meal retrieved", mealToResponse(m))
}

// UpdateMeal handles PUT /api/v1/meals/:id. The body carries the full new
// state; fields left out of the request are treated as empty.
func (s *Server) UpdateMeal(ctx echo.Context) error {
	mealID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid meal id")
	}

	var req mealRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateMealCommand(
		mealID, req.Name, req.Composition, req.Price, req.OriginPlanet, req.Description)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.updateMealHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "meal updated", nil)
}

// DeleteMeal handles DELETE /api/v1/meals/:id.
func (s *Server) DeleteMeal(ctx echo.Context) error {
	mealID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid meal id")
	}

	cmd, err := commands.NewDeleteMealCommand(mealID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.deleteMealHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "meal deleted", nil)
}
