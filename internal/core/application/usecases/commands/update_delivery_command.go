package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents a rider's progress report on a delivery
// attempt. Distance and tip are only read when the target is delivered; they
// feed the earning computation.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.SubStatus
	actor      user.Actor
	distanceKm int
	tip        kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a delivery progress command.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	target delivery.SubStatus,
	actor user.Actor,
	distanceKm int,
	tip kernel.Money,
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		cmd.setDistanceKm(distanceKm),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}
	cmd.tip = tip

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery attempt being advanced.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested sub-status.
func (c UpdateDeliveryCommand) Target() delivery.SubStatus {
	return c.target
}

// Actor returns the authenticated caller.
func (c UpdateDeliveryCommand) Actor() user.Actor {
	return c.actor
}

// DistanceKm returns the ride distance in whole kilometers.
func (c UpdateDeliveryCommand) DistanceKm() int {
	return c.distanceKm
}

// Tip returns the customer tip, possibly zero.
func (c UpdateDeliveryCommand) Tip() kernel.Money {
	return c.tip
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryCommand) setTarget(target delivery.SubStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateDeliveryCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDeliveryCommand) setDistanceKm(distanceKm int) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidError("distance cannot be negative")
	}

	c.distanceKm = distanceKm
	return nil
}
