package http

import (
	"net/http"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type heroRequest struct {
	Name         string   `json:"name"`
	Planet       string   `json:"planet"`
	Restrictions []string `json:"restrictions"`
}

type heroResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Planet       string   `json:"planet"`
	Restrictions []string `json:"restrictions"`
}

func heroToResponse(h queries.GetAllHeroesQueryResponse) heroResponse {
	return heroResponse{
		ID:           h.ID.String(),
		Name:         h.Name,
		Planet:       h.Planet,
		Restrictions: h.Restrictions,
	}
}

// CreateHero handles POST /api/v1/heroes.
func (s *Server) CreateHero(ctx echo.Context) error {
	var req heroRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	heroID := kernel.NewUUID()
	cmd, err := commands.NewCreateHeroCommand(heroID, req.Name, req.Planet, req.Restrictions)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createHeroHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "hero created", map[string]string{"id": heroID.String()})
}

// GetHeroes handles GET /api/v1/heroes.
func (s *Server) GetHeroes(ctx echo.Context) error {
	query := queries.NewGetAllHeroesQuery()

	heroes, err := s.getAllHeroesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]heroResponse, 0, len(heroes))
	for _, h := range heroes {
		response = append(response, heroToResponse(h))
	}

	return respond(ctx, http.StatusOK, "heroes retrieved", response)
}

// GetHero handles GET /api/v1/heroes/:id.
func (s *Server) GetHero(ctx echo.Context) error {
	heroID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid hero id")
	}

	query, err := queries.NewGetHeroByIDQuery(heroID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	h, err := s.getHeroByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "hero retrieved", heroToResponse(h))
}

// UpdateHero handles PUT /api/v1/heroes/:id. The body carries the full new
// state; fields left out of the request are treated as empty.
func (s *Server) UpdateHero(ctx echo.Context) error {
	heroID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid hero id")
	}

	var req heroRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateHeroCommand(heroID, req.Name, req.Planet, req.Restrictions)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.updateHeroHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "hero updated", nil)
}

// DeleteHero handles DELETE /api/v1/heroes/:id.
func (s *Server) DeleteHero(ctx echo.Context) error {
	heroID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid hero id")
	}

	cmd, err := commands.NewDeleteHeroCommand(heroID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.deleteHeroHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "hero deleted", nil)
}
