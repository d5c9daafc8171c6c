package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// AuditRecord captures who moved an entity between which states and when.
type AuditRecord struct {
	ActorID    kernel.UUID
	ActorRole  user.Role
	Action     string
	EntityID   kernel.UUID
	Before     string
	After      string
	OccurredAt time.Time
}

// AuditLog defines the outbound contract for the audit trail. Every order
// transition writes one record.
type AuditLog interface {
	Record(ctx context.Context, record AuditRecord) error
}
