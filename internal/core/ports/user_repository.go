package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts. The
// core only reads the role and status of an account and promotes applicants
// to sellers; account management itself is an external concern.
type UserRepository interface {
	// Get retrieves the actor view of an account.
	Get(ctx context.Context, id kernel.UUID) (user.Actor, error)

	// UpdateRole changes the role of an account. Used when a seller
	// application is approved.
	UpdateRole(ctx context.Context, id kernel.UUID, role user.Role) error
}
