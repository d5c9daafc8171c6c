package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler lists a seller's orders from the database.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order queries.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first with their line
// counts aggregated in SQL.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]GetSellerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.total_amount_cents,
			o.created_at,
			COUNT(i.id) AS item_count
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.seller_id = ?
		GROUP BY o.id, o.customer_id, o.status, o.total_amount_cents, o.created_at
		ORDER BY o.created_at DESC
	`, query.SellerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetSellerOrdersQueryResponse, 0)

	for rows.Next() {
		var id, customerID uuid.UUID
		var status int
		var totalCents int64
		var createdAt time.Time
		var itemCount int

		err = rows.Scan(&id, &customerID, &status, &totalCents, &createdAt, &itemCount)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetSellerOrdersQueryResponse{
			ID:         orderID,
			CustomerID: custID,
			Status:     order.Status(status).String(),
			ItemCount:  itemCount,
			TotalCents: totalCents,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
