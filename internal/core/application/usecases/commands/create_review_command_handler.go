package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// CreateReviewCommandHandler enforces the review gate: only the customer of a
// delivered order may review, only for an item of that order, and only once
// per item.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review. Returns ErrOrderNotDelivered before delivery
// and ErrDuplicateReview for a repeated (user, product, order item) triple.
func (h CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
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
		return review.ErrOrderNotDelivered
	}
	if !ord.CustomerID().IsEqual(cmd.UserID()) {
		return order.NewUnauthorizedError(cmd.UserID(), user.RoleCustomer, "review another customer's order")
	}

	var productID kernel.UUID
	found := false
	for _, item := range ord.Items() {
		if item.ID().IsEqual(cmd.OrderItemID()) {
			productID = item.ProductID()
			found = true
			break
		}
	}
	if !found {
		return errs.NewObjectNotFoundError("orderItemID", cmd.OrderItemID())
	}

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.ExistsFor(ctx, cmd.UserID(), productID, cmd.OrderItemID())
	if err != nil {
		return err
	}
	if exists {
		return review.NewDuplicateReviewError(cmd.UserID(), productID, cmd.OrderItemID())
	}

	rev, err := review.NewReview(
		kernel.NewUUID(), cmd.UserID(), productID, cmd.OrderItemID(),
		cmd.Rating(), cmd.Comment(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, rev); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
