package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrRiderAssignmentRequired = errors.New("rider assignment goes through the assignment flow")
)

// TransitionOrderCommand represents a request to move an order along one edge
// of its state machine on behalf of an actor.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   user.Actor

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition command. The actor is the
// authenticated caller; whether they may drive the edge is decided by the
// order itself.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor user.Actor,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the authenticated caller.
func (c TransitionOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.StatusAssignedToRider {
		return ErrRiderAssignmentRequired
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
