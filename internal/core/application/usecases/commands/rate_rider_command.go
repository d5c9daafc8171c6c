package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRateRiderCommandIsNotConstructed = errors.New(
	"RateRiderCommand must be created via NewRateRiderCommand constructor",
)

// RateRiderCommand represents a seller's score for the rider who delivered
// one of their orders.
type RateRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Actor
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewRateRiderCommand creates a rating command.
func NewRateRiderCommand(orderID kernel.UUID, actor user.Actor, rating int, comment string) (RateRiderCommand, error) {
	cmd := RateRiderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRating(rating),
	); err != nil {
		return RateRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateRiderCommand) Validate() error {
	return c.guard.Validate(ErrRateRiderCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c RateRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c RateRiderCommand) Actor() user.Actor {
	return c.actor
}

// Rating returns the score.
func (c RateRiderCommand) Rating() int {
	return c.rating
}

// Comment returns the free-text note, possibly empty.
func (c RateRiderCommand) Comment() string {
	return c.comment
}

func (c *RateRiderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateRiderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RateRiderCommand) setRating(rating int) error {
	if rating < delivery.MinRating || rating > delivery.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, delivery.MinRating, delivery.MaxRating)
	}

	c.rating = rating
	return nil
}
