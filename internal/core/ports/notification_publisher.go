package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Notification event names published by the command handlers.
const (
	EventOrderStatusChanged        = "order_status_changed"
	EventDeliveryUpdate            = "delivery_update"
	EventSellerApplicationReviewed = "seller_application_reviewed"
)

// Notification is a best-effort message to the user affected by a state
// change. Delivery is fire-and-forget; the owning transaction never waits on
// the broker.
type Notification struct {
	Event    string
	UserID   kernel.UUID
	EntityID kernel.UUID
	NewState string
}

// NotificationPublisher defines the outbound contract for user notifications.
type NotificationPublisher interface {
	// Publish sends a notification. Errors are for the caller to log, not
	// to fail the command on.
	Publish(ctx context.Context, notification Notification) error
}
