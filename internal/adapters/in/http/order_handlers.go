package http

import (
	"errors"
	"net/http"
	"time"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	HeroID  string `json:"hero_id"`
	MealID  string `json:"meal_id"`
	Message string `json:"message"`
}

type orderActionRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

type orderResponse struct {
	ID          string  `json:"id"`
	HeroID      string  `json:"hero_id"`
	MealID      string  `json:"meal_id"`
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

func orderToResponse(o queries.GetAllOrdersQueryResponse) orderResponse {
	resp := orderResponse{
		ID:        o.ID.String(),
		HeroID:    o.HeroID.String(),
		MealID:    o.MealID.String(),
		Status:    o.Status,
		Message:   o.Message,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.CompletedAt != nil {
		completedAt := o.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}

// CreateOrder handles POST /api/v1/orders.
//
// Responds 201 when the order is persisted and the processing job published,
// and 202 when the row committed but the publish failed: the order exists in
// Pending status and the recovery job will re-enqueue it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	heroID, err := kernel.UUIDFromString(req.HeroID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid hero id")
	}
	mealID, err := kernel.UUIDFromString(req.MealID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid meal id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, heroID, mealID, req.Message)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrEnqueueFailed) {
			return respond(ctx, http.StatusAccepted,
				"order accepted, processing delayed", map[string]string{"id": orderID.String()})
		}
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "order created", map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}

	return respond(ctx, http.StatusOK, "orders retrieved", response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	o, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "order retrieved", orderToResponse(o))
}

// OrderAction handles POST /api/v1/orders/:id/actions.
//
// The body selects the action: "cancel" requires a reason and fails with 400
// once the order is terminal; "delete" removes the order unconditionally.
func (s *Server) OrderAction(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req orderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	switch req.Action {
	case "cancel":
		cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
		if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return mapError(ctx, err)
		}
		return respond(ctx, http.StatusOK, "order cancelled", nil)

	case "delete":
		cmd, err := commands.NewDeleteOrderCommand(orderID)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
		if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return mapError(ctx, err)
		}
		return respond(ctx, http.StatusOK, "order deleted", nil)

	default:
		return respondError(ctx, http.StatusBadRequest, "unknown action, expected cancel or delete")
	}
}
