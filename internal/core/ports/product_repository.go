// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, the notification publisher
// and the audit log. Implementations live under internal/adapters.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and their reservation rows.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate, including
	// its reservations.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product with its reservations, taking a row lock
	// inside the current transaction. Concurrent reservations of the same
	// product serialize on this lock.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBatch retrieves several products without locking. Missing IDs are
	// skipped, not reported.
	GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetBatchForUpdate retrieves several products under row locks in a
	// deterministic order. Used by checkout to reserve a whole partition
	// at once without deadlocking against a concurrent checkout.
	GetBatchForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
