package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items, taking a row lock inside the
	// current transaction. Concurrent transitions of the same order
	// serialize on this lock.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
