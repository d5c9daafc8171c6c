package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrProcessPayoutsCommandIsNotConstructed = errors.New(
	"ProcessPayoutsCommand must be created via NewProcessPayoutsCommand constructor",
)

// ProcessPayoutsCommand represents a request to settle all pending rider
// earnings. It carries no parameters; the payout job issues it on a schedule.
type ProcessPayoutsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessPayoutsCommand creates a payout command.
func NewProcessPayoutsCommand() ProcessPayoutsCommand {
	return ProcessPayoutsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessPayoutsCommand) Validate() error {
	return c.guard.Validate(ErrProcessPayoutsCommandIsNotConstructed)
}
