package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for carts. A customer has
// at most one cart; loading a missing cart returns an empty one.
type CartRepository interface {
	// GetByCustomer retrieves the customer's cart, or an empty cart when
	// they have none yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart, replacing its stored entries.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// DeleteEntries removes the given products from the customer's cart.
	// Used by checkout to clear exactly the entries of a succeeded
	// partition, leaving failed partitions in place.
	DeleteEntries(ctx context.Context, customerID kernel.UUID, productIDs []kernel.UUID) error
}
