package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
)

// AssignRiderCommandHandler creates a delivery attempt for an order and
// mirrors the order into assigned_to_rider, all in one transaction.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory, auditLog, publisher)
//	cmd, _ := NewAssignRiderCommand(orderID, riderID, seller)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrRiderUnavailable):
//	    // the designated user is not an active rider
//	case errors.Is(err, delivery.ErrAlreadyAssigned):
//	    // a non-failed delivery already exists for the order
//	}
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	auditLog   ports.AuditLog
	publisher  ports.NotificationPublisher
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(
	uowFactory AssignmentUoWFactory,
	auditLog ports.AuditLog,
	publisher ports.NotificationPublisher,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		publisher:  publisher,
	}
}

// Handle processes the assignment. The rider must hold the rider role with an
// active account, and the order must not have a live delivery attempt.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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

	rider, err := uow.UserRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if rider.Role() != user.RoleRider || !rider.IsActive() {
		return delivery.NewRiderUnavailableError(cmd.RiderID())
	}

	deliveryRepo := uow.DeliveryRepository()

	active, err := deliveryRepo.GetActiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if active != nil {
		return delivery.NewAlreadyAssignedError(cmd.OrderID(), active.RiderID())
	}

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status()
	now := time.Now()
	if err = ord.AssignRider(cmd.RiderID(), cmd.Actor(), now); err != nil {
		return err
	}

	attempt, err := delivery.NewDelivery(kernel.NewUUID(), ord.ID(), cmd.RiderID(), now)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, attempt); err != nil {
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
		UserID:   cmd.RiderID(),
		EntityID: attempt.ID(),
		NewState: attempt.SubStatus().String(),
	})

	return nil
}
