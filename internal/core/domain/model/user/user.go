// Package user defines the actor identity model shared by all marketplace
// operations. Authentication is external; the core receives an authenticated
// Actor (id, role, account status) with every mutating call and enforces
// role gating itself.
package user

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role identifies which of the four marketplace actor kinds a user is.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer browses the catalog, fills a cart, and places orders.
	RoleCustomer

	// RoleSeller owns products and drives seller-side order transitions.
	RoleSeller

	// RoleAdmin moderates the marketplace and may act on any order.
	RoleAdmin

	// RoleRider delivers orders and drives delivery sub-status transitions.
	RoleRider
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleSeller:   "seller",
		RoleAdmin:    "admin",
		RoleRider:    "rider",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid role", s))
}

// Validate returns an error for RoleUnknown and any other undefined value.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Status is the account status gating login and mutation rights.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive accounts may perform the operations their role permits.
	StatusActive

	// StatusInactive accounts are disabled and may not mutate anything.
	StatusInactive

	// StatusSuspended accounts are blocked by an administrator.
	StatusSuspended
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusSuspended: "suspended",
	}
}

// StatusFromString parses the wire representation of an account status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid user status", s))
}

// Validate returns an error for StatusUnknown and any other undefined value.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid user status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Actor is the authenticated identity attached to a core operation.
// It is a value object built from the auth layer's claims; the core trusts the
// identity and checks the role and status against each operation's gate.
type Actor struct {
	id     kernel.UUID
	role   Role
	status Status
}

// NewActor creates a validated Actor from authenticated identity claims.
func NewActor(id kernel.UUID, role Role, status Status) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := status.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, status: status}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's marketplace role.
func (a Actor) Role() Role {
	return a.role
}

// Status returns the actor's account status.
func (a Actor) Status() Status {
	return a.status
}

// IsActive reports whether the actor's account permits mutations.
func (a Actor) IsActive() bool {
	return a.status == StatusActive
}

// Validate reports whether the actor carries a constructed identity.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	if err := a.role.Validate(); err != nil {
		return err
	}
	return a.status.Validate()
}
