package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
)

// ErrRiderAlreadyRated is returned for a second rating of the same order's
// rider.
var ErrRiderAlreadyRated = errors.New("rider already rated for this order")

// RateRiderCommandHandler lets the seller of a delivered order score its
// rider, once per order.
type RateRiderCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewRateRiderCommandHandler creates a handler for rider ratings.
func NewRateRiderCommandHandler(uowFactory RatingUoWFactory) RateRiderCommandHandler {
	return RateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating. The order must be delivered, the actor must be
// its seller or an admin, and the rider must not have been rated for this
// order before.
func (h RateRiderCommandHandler) Handle(ctx context.Context, cmd RateRiderCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if ord.Status() != order.StatusDelivered {
		return order.NewIllegalTransitionError(ord.Status(), order.StatusDelivered)
	}
	actor := cmd.Actor()
	if actor.Role() != user.RoleAdmin && !actor.ID().IsEqual(ord.SellerID()) {
		return order.NewUnauthorizedError(actor.ID(), actor.Role(), "rate another seller's rider")
	}
	if ord.RiderID() == nil {
		return delivery.ErrRiderUnavailable
	}
	riderID := *ord.RiderID()

	deliveryRepo := uow.DeliveryRepository()

	rated, err := deliveryRepo.RatingExists(ctx, ord.ID(), riderID)
	if err != nil {
		return err
	}
	if rated {
		return ErrRiderAlreadyRated
	}

	rating, err := delivery.NewRiderRating(
		kernel.NewUUID(), ord.ID(), riderID, ord.SellerID(),
		cmd.Rating(), cmd.Comment(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.AddRating(ctx, rating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
