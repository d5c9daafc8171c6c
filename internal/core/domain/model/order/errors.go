package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// Sentinel errors for the order state machine, usable with errors.Is.
var (
	ErrIllegalTransition = errors.New("illegal transition")
	ErrUnauthorized      = errors.New("unauthorized")
)

// IllegalTransitionError reports a transition attempt along an edge the state
// machine does not define, naming both the current and the requested state.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for an edge.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// UnauthorizedError reports a role-gate violation: the actor exists and the
// edge is legal, but this actor may not drive it.
type UnauthorizedError struct {
	ActorID kernel.UUID
	Role    user.Role
	Action  string
}

// NewUnauthorizedError creates an UnauthorizedError for an actor and action.
func NewUnauthorizedError(actorID kernel.UUID, role user.Role, action string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Role: role, Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s %s may not %s", ErrUnauthorized, e.Role, e.ActorID, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
