package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a customer's cart straight from the database,
// joined with the catalog so stale entries surface to the client.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart snapshot queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. Entries are joined with products; a missing or
// non-active product makes the line not purchasable and it is excluded from
// the total.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.product_id,
			e.quantity,
			p.price_cents,
			p.status
		FROM cart_entries e
		LEFT JOIN products p ON p.id = e.product_id
		WHERE e.customer_id = ?
		ORDER BY e.product_id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	response := GetCartQueryResponse{Items: make([]CartItemResponse, 0)}

	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var priceCents sql.NullInt64
		var status sql.NullInt64

		if err = rows.Scan(&productID, &quantity, &priceCents, &status); err != nil {
			return GetCartQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}

		item := CartItemResponse{
			ProductID:   id,
			Quantity:    quantity,
			PriceCents:  priceCents.Int64,
			Purchasable: status.Valid && product.Status(status.Int64) == product.StatusActive,
		}
		if item.Purchasable {
			response.TotalCents += item.PriceCents * int64(quantity)
		}

		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
