package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetRiderEarningsQueryIsNotConstructed = errors.New(
	"GetRiderEarningsQuery must be created via NewGetRiderEarningsQuery constructor",
)

// GetRiderEarningsQuery retrieves a rider's earning history with pending and
// paid totals.
type GetRiderEarningsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderEarningsQuery creates a query for the rider's earnings.
func NewGetRiderEarningsQuery(riderID kernel.UUID) (GetRiderEarningsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderEarningsQuery{}, err
	}

	return GetRiderEarningsQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderEarningsQueryIsNotConstructed)
}

// RiderID returns the rider whose earnings are listed.
func (q GetRiderEarningsQuery) RiderID() kernel.UUID {
	return q.riderID
}

// GetRiderEarningsQueryResponse is the rider's earning history with totals
// computed over it.
type GetRiderEarningsQueryResponse struct {
	Earnings          []EarningResponse
	PendingTotalCents int64
	PaidTotalCents    int64
}

// EarningResponse is one earning row in the rider's history.
type EarningResponse struct {
	OrderID    kernel.UUID
	TotalCents int64
	Status     string
	CreatedAt  time.Time
}
