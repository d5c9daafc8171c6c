// Package queries contains read-only operations that bypass the domain
// aggregates. Queries read the database directly for the read side of the
// CQRS split; they never take locks and never mutate state.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart joined with the live catalog.
// Entries whose product disappeared or became unavailable are still returned,
// flagged as not purchasable, so the client can show the customer what went
// stale since the cart was filled.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the customer's cart snapshot.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is the cart snapshot: one row per entry plus the
// running total over purchasable lines.
type GetCartQueryResponse struct {
	Items      []CartItemResponse
	TotalCents int64
}

// CartItemResponse is one cart line joined with the current catalog state.
// PriceCents is the live price, not a snapshot; checkout takes its own
// snapshot at order assembly.
type CartItemResponse struct {
	ProductID   kernel.UUID
	Quantity    int
	PriceCents  int64
	Purchasable bool
}
