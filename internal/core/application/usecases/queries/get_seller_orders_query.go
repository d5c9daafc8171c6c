package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves a seller's orders with their line counts,
// newest first. Used by the seller dashboard to list work in progress.
type GetSellerOrdersQuery struct {
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for the seller's order list.
func NewGetSellerOrdersQuery(sellerID kernel.UUID) (GetSellerOrdersQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerOrdersQuery{}, err
	}

	return GetSellerOrdersQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// SellerID returns the seller whose orders are listed.
func (q GetSellerOrdersQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// GetSellerOrdersQueryResponse is one order row in the seller's list.
type GetSellerOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	ItemCount  int
	TotalCents int64
	CreatedAt  time.Time
}
