package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
)

// SellerApplicationRepository defines the persistence contract for seller
// applications.
type SellerApplicationRepository interface {
	// Add persists a new application.
	Add(ctx context.Context, aggregate *seller.Application) error

	// Update persists changes to an existing application.
	Update(ctx context.Context, aggregate *seller.Application) error

	// Get retrieves an application, taking a row lock inside the current
	// transaction so two admins cannot settle it concurrently.
	Get(ctx context.Context, id kernel.UUID) (*seller.Application, error)
}
