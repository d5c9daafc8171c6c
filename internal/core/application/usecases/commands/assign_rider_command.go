package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a request to hand an order to a rider.
// Only the order's seller or an admin may assign.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates an assignment command.
func NewAssignRiderCommand(orderID, riderID kernel.UUID, actor user.Actor) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
		cmd.setActor(actor),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the designated rider.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Actor returns the authenticated caller.
func (c AssignRiderCommand) Actor() user.Actor {
	return c.actor
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *AssignRiderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
