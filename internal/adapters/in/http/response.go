package http

import (
	"errors"
	"net/http"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body. Success responses carry data;
// failures carry a safe error string and never a raw internal error.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   message,
	})
}

// mapError translates use-case errors into HTTP failures.
//
// Mapping:
//   - not found -> 404
//   - validation failures -> 400
//   - cancelling a finished order -> 400 (state conflict per the API contract)
//   - optimistic version conflict -> 409, the caller may retry with fresh state
//   - anything else -> 500 with a generic message
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, "resource not found")
	case errors.Is(err, commands.ErrOrderAlreadyFinished):
		return respondError(ctx, http.StatusBadRequest, "order is already in a terminal state")
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return respondError(ctx, http.StatusConflict, "conflicting concurrent update, retry")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, "internal error")
	}
}
