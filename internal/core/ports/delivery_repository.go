package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery attempts,
// rider earnings and rider ratings.
type DeliveryRepository interface {
	// Add persists a new delivery attempt.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery attempt.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery attempt by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetActiveByOrder retrieves the order's non-terminal delivery attempt,
	// or nil when the order is re-assignable.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the full assignment history of an order, oldest
	// first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	// AddEarning persists a rider earning.
	AddEarning(ctx context.Context, earning *delivery.RiderEarning) error

	// UpdateEarning persists changes to an existing earning.
	UpdateEarning(ctx context.Context, earning *delivery.RiderEarning) error

	// GetEarningByOrderAndRider retrieves the earning recorded for an order
	// and rider pair, or nil when none was recorded yet.
	GetEarningByOrderAndRider(ctx context.Context, orderID, riderID kernel.UUID) (*delivery.RiderEarning, error)

	// GetPendingEarnings retrieves all earnings awaiting payout.
	GetPendingEarnings(ctx context.Context) ([]*delivery.RiderEarning, error)

	// AddRating persists a rider rating. Returns an error when a rating for
	// the same order and rider already exists.
	AddRating(ctx context.Context, rating *delivery.RiderRating) error

	// RatingExists reports whether the order's rider was already rated.
	RatingExists(ctx context.Context, orderID, riderID kernel.UUID) (bool, error)
}
