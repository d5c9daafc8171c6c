// Package auditlog writes the audit trail through structured logging. The
// log stream is the system of record for who moved which entity; a later
// collector can ship it wherever compliance needs it.
package auditlog

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// SlogAuditLog implements ports.AuditLog on a slog logger.
type SlogAuditLog struct {
	logger *slog.Logger
}

// NewSlogAuditLog creates an audit log writing to the given logger.
func NewSlogAuditLog(logger *slog.Logger) *SlogAuditLog {
	return &SlogAuditLog{
		logger: logger.With("component", "audit"),
	}
}

// Record writes one audit record.
func (l *SlogAuditLog) Record(ctx context.Context, record ports.AuditRecord) error {
	l.logger.InfoContext(ctx, "audit",
		"actor_id", record.ActorID.String(),
		"actor_role", record.ActorRole.String(),
		"action", record.Action,
		"entity_id", record.EntityID.String(),
		"before", record.Before,
		"after", record.After,
		"occurred_at", record.OccurredAt,
	)
	return nil
}
