package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for product reviews.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsFor reports whether the (user, product, order item) triple was
	// already reviewed.
	ExistsFor(ctx context.Context, userID, productID, orderItemID kernel.UUID) (bool, error)
}
