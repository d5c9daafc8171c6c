// Package kafka publishes user notifications to a Kafka topic. Messages are
// keyed by recipient so each user's notifications keep their order.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// notificationMessage is the wire format of one notification.
type notificationMessage struct {
	Event    string    `json:"event"`
	UserID   string    `json:"user_id"`
	EntityID string    `json:"entity_id"`
	NewState string    `json:"new_state"`
	SentAt   time.Time `json:"sent_at"`
}

// NotificationPublisher implements ports.NotificationPublisher on top of a
// Kafka writer.
type NotificationPublisher struct {
	writer *kafka.Writer
}

// NewNotificationPublisher creates a publisher writing to the given brokers
// and topic.
func NewNotificationPublisher(brokers []string, topic string) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish sends one notification. The caller treats errors as log-only; the
// business transaction has already committed by the time this runs.
func (p *NotificationPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	value, err := json.Marshal(notificationMessage{
		Event:    notification.Event,
		UserID:   notification.UserID.String(),
		EntityID: notification.EntityID.String(),
		NewState: notification.NewState,
		SentAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.UserID.String()),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
