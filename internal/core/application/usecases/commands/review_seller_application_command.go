package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrReviewSellerApplicationCommandIsNotConstructed = errors.New(
	"ReviewSellerApplicationCommand must be created via NewReviewSellerApplicationCommand constructor",
)

// ReviewSellerApplicationCommand represents an admin's verdict on a seller
// application.
type ReviewSellerApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	approve       bool
	actor         user.Actor

	guard guard.ConstructorGuard
}

// NewReviewSellerApplicationCommand creates a verdict command.
func NewReviewSellerApplicationCommand(
	applicationID kernel.UUID,
	approve bool,
	actor user.Actor,
) (ReviewSellerApplicationCommand, error) {
	cmd := ReviewSellerApplicationCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setActor(actor),
	); err != nil {
		return ReviewSellerApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewSellerApplicationCommand) Validate() error {
	return c.guard.Validate(ErrReviewSellerApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application being settled.
func (c ReviewSellerApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Approve reports whether the verdict is approval.
func (c ReviewSellerApplicationCommand) Approve() bool {
	return c.approve
}

// Actor returns the authenticated caller.
func (c ReviewSellerApplicationCommand) Actor() user.Actor {
	return c.actor
}

func (c *ReviewSellerApplicationCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}

	c.applicationID = applicationID
	return nil
}

func (c *ReviewSellerApplicationCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
