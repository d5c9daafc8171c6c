package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateDeliveryCommandHandler advances a delivery attempt and mirrors the
// change into the owning order. Reaching delivered records the rider's
// earning exactly once; a failure detaches the rider and leaves the order
// re-assignable.
type UpdateDeliveryCommandHandler struct {
	uowFactory     DeliveryUoWFactory
	earningsPolicy services.EarningsPolicy
	auditLog       ports.AuditLog
	publisher      ports.NotificationPublisher
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery progress.
func NewUpdateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	earningsPolicy services.EarningsPolicy,
	auditLog ports.AuditLog,
	publisher ports.NotificationPublisher,
) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory:     uowFactory,
		earningsPolicy: earningsPolicy,
		auditLog:       auditLog,
		publisher:      publisher,
	}
}

// Handle processes the progress report. Only the rider holding the attempt
// may advance it. On delivered the earning is computed from the configured
// policy and stored; a second delivered report for the same order and rider
// fails with ErrEarningAlreadyRecorded.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	attempt, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !cmd.Actor().ID().IsEqual(attempt.RiderID()) {
		return order.NewUnauthorizedError(cmd.Actor().ID(), cmd.Actor().Role(),
			"advance another rider's delivery")
	}

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, attempt.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status()
	now := time.Now()
	if err = attempt.TransitionTo(cmd.Target(), now); err != nil {
		return err
	}

	switch cmd.Target() {
	case delivery.SubStatusPickedUp:
		err = ord.TransitionTo(order.StatusPickedUp, cmd.Actor(), now)
	case delivery.SubStatusInTransit:
		err = ord.TransitionTo(order.StatusOnTheWay, cmd.Actor(), now)
	case delivery.SubStatusDelivered:
		if err = ord.TransitionTo(order.StatusDelivered, cmd.Actor(), now); err != nil {
			return err
		}
		err = h.recordEarning(ctx, deliveryRepo, attempt, cmd)
	case delivery.SubStatusFailed:
		// The attempt stays in history; the order is open for the next rider.
		ord.ClearRider(now)
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, attempt); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.auditLog.Record(ctx, ports.AuditRecord{
		ActorID:    cmd.Actor().ID(),
		ActorRole:  cmd.Actor().Role(),
		Action:     "order_transition",
		EntityID:   ord.ID(),
		Before:     before.String(),
		After:      ord.Status().String(),
		OccurredAt: now,
	})
	_ = h.publisher.Publish(ctx, ports.Notification{
		Event:    ports.EventDeliveryUpdate,
		UserID:   ord.CustomerID(),
		EntityID: attempt.ID(),
		NewState: attempt.SubStatus().String(),
	})

	return nil
}

func (h UpdateDeliveryCommandHandler) recordEarning(
	ctx context.Context,
	deliveryRepo ports.DeliveryRepository,
	attempt *delivery.Delivery,
	cmd UpdateDeliveryCommand,
) error {
	existing, err := deliveryRepo.GetEarningByOrderAndRider(ctx, attempt.OrderID(), attempt.RiderID())
	if err != nil {
		return err
	}
	if existing != nil {
		return delivery.NewEarningAlreadyRecordedError(attempt.OrderID(), attempt.RiderID())
	}

	breakdown, err := h.earningsPolicy.Compute(cmd.DistanceKm(), cmd.Tip())
	if err != nil {
		return err
	}

	earning, err := h.earningsPolicy.NewRiderEarning(attempt, breakdown)
	if err != nil {
		return err
	}

	return deliveryRepo.AddEarning(ctx, earning)
}
