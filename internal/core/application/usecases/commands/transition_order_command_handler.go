package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// TransitionOrderCommandHandler drives the order state machine. The order
// decides whether the edge and the actor are legal; the handler adds the side
// effects: cancellations give stock back to the ledger, and every transition
// leaves an audit record and a customer notification.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	auditLog   ports.AuditLog
	publisher  ports.NotificationPublisher
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	auditLog ports.AuditLog,
	publisher ports.NotificationPublisher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
		publisher:  publisher,
	}
}

// Handle processes the transition. The order row is locked for the duration
// of the transaction, so concurrent transitions of the same order serialize
// and the loser re-evaluates against the new state.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status()
	now := time.Now()

	if err = ord.TransitionTo(cmd.Target(), cmd.Actor(), now); err != nil {
		return err
	}

	if cmd.Target() == order.StatusCancelled {
		if err = h.restoreInventory(ctx, uow, ord); err != nil {
			return err
		}
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
		Event:    ports.EventOrderStatusChanged,
		UserID:   ord.CustomerID(),
		EntityID: ord.ID(),
		NewState: ord.Status().String(),
	})

	return nil
}

// restoreInventory gives a cancelled order's stock back. A reservation still
// held for the order is released; committed quantities are restocked.
func (h TransitionOrderCommandHandler) restoreInventory(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
) error {
	productRepo := uow.ProductRepository()

	for _, item := range ord.Items() {
		prod, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if held := prod.HeldReservationForOrder(ord.ID()); held != nil {
			if err = prod.ReleaseReservation(held.ID()); err != nil {
				return err
			}
		} else if err = prod.Restock(item.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	return nil
}
