package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a customer's request to review a product
// they received. The order item ties the review to a concrete purchase.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	orderID     kernel.UUID
	orderItemID kernel.UUID
	rating      int
	comment     string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a review command.
func NewCreateReviewCommand(
	userID, orderID, orderItemID kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderID(orderID),
		cmd.setOrderItemID(orderItemID),
		cmd.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// UserID returns the reviewing customer.
func (c CreateReviewCommand) UserID() kernel.UUID {
	return c.userID
}

// OrderID returns the order that proves the purchase.
func (c CreateReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderItemID returns the reviewed order line.
func (c CreateReviewCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

// Rating returns the score.
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the free-text note, possibly empty.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateReviewCommand) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}

	c.orderItemID = orderItemID
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}

	c.rating = rating
	return nil
}
