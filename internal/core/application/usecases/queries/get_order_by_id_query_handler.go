package queries

import (
	"context"

	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler looks up one order by identifier.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when no order matches.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			hero_id,
			meal_id,
			status,
			message,
			created_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAllOrdersQueryResponse{}, err
		}
		return GetAllOrdersQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return scanOrderRow(rows)
}
