package queries

import (
	"context"
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders straight from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

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
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (GetAllOrdersQueryResponse, error) {
	var id, heroID, mealID uuid.UUID
	var status int
	var message string
	var createdAt time.Time
	var completedAt *time.Time

	if err := row.Scan(&id, &heroID, &mealID, &status, &message, &createdAt, &completedAt); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	orderHeroID, err := kernel.UUIDFromBytes(heroID[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	orderMealID, err := kernel.UUIDFromBytes(mealID[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	return GetAllOrdersQueryResponse{
		ID:          orderID,
		HeroID:      orderHeroID,
		MealID:      orderMealID,
		Status:      order.Status(status).String(),
		Message:     message,
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}, nil
}
