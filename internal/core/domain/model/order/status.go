package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> assigned_to_rider ──> picked_up ──> on_the_way ──> delivered
//	   │            │             │                │                  │              │             │
//	   └────────────┴─────────────┴────────────────┴──────────────────┴──────────────┘             │
//	                                      cancelled ──────────────────────> refunded <─────────────┘
//	                                                  (payment must be paid)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout, awaiting the seller.
	StatusPending

	// StatusConfirmed means the seller accepted the order.
	StatusConfirmed

	// StatusPreparing means the seller is packing the order.
	StatusPreparing

	// StatusAssignedToRider means a delivery was created for the order.
	StatusAssignedToRider

	// StatusPickedUp means the rider collected the package from the seller.
	StatusPickedUp

	// StatusOnTheWay means the rider is en route to the customer.
	StatusOnTheWay

	// StatusDelivered is the successful terminal state; it unlocks reviews
	// and the rider's earning.
	StatusDelivered

	// StatusCancelled is reachable from any non-terminal state.
	StatusCancelled

	// StatusRefunded is reachable from cancelled or delivered orders whose
	// payment was recorded as paid.
	StatusRefunded
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:         "pending",
		StatusConfirmed:       "confirmed",
		StatusPreparing:       "preparing",
		StatusAssignedToRider: "assigned_to_rider",
		StatusPickedUp:        "picked_up",
		StatusOnTheWay:        "on_the_way",
		StatusDelivered:       "delivered",
		StatusCancelled:       "cancelled",
		StatusRefunded:        "refunded",
	}
}

// StatusFromString parses the wire representation of an order status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid order status", s))
}

// Validate returns an error for StatusUnknown and any other undefined value.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the lifecycle permits no further transitions
// except the explicit refund edge.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

// transitionRule gates one edge of the state machine: the roles that may drive
// it plus an ownership predicate binding the actor to this particular order.
type transitionRule struct {
	roles   []user.Role
	precond func(o *Order, actor user.Actor) error
}

func (r transitionRule) allowsRole(role user.Role) bool {
	for _, allowed := range r.roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// ownSeller admits the order's seller and any admin.
func ownSeller(o *Order, actor user.Actor) error {
	if actor.Role() == user.RoleAdmin || actor.ID().IsEqual(o.sellerID) {
		return nil
	}
	return NewUnauthorizedError(actor.ID(), actor.Role(), "act on another seller's order")
}

// ownCustomerOrSeller admits the order's customer, its seller, and any admin.
func ownCustomerOrSeller(o *Order, actor user.Actor) error {
	if actor.Role() == user.RoleCustomer && !actor.ID().IsEqual(o.customerID) {
		return NewUnauthorizedError(actor.ID(), actor.Role(), "cancel another customer's order")
	}
	if actor.Role() == user.RoleSeller && !actor.ID().IsEqual(o.sellerID) {
		return NewUnauthorizedError(actor.ID(), actor.Role(), "cancel another seller's order")
	}
	return nil
}

// assignedRider admits only the rider currently assigned to the order.
func assignedRider(o *Order, actor user.Actor) error {
	if o.riderID == nil || !actor.ID().IsEqual(*o.riderID) {
		return NewUnauthorizedError(actor.ID(), actor.Role(), "drive another rider's delivery")
	}
	return nil
}

// paymentWasPaid guards the refund edge.
func paymentWasPaid(o *Order, actor user.Actor) error {
	if o.paymentStatus != PaymentPaid {
		return NewIllegalTransitionError(o.status, StatusRefunded)
	}
	return nil
}

// transitionTable is the single source of truth for the order lifecycle.
// Cancellation from pending is the only customer-driven edge; all later
// cancellations belong to the seller or an admin.
func transitionTable() map[Status]map[Status]transitionRule {
	sellerOnly := transitionRule{roles: []user.Role{user.RoleSeller}, precond: ownSeller}
	sellerOrAdmin := transitionRule{roles: []user.Role{user.RoleSeller, user.RoleAdmin}, precond: ownSeller}
	riderOnly := transitionRule{roles: []user.Role{user.RoleRider}, precond: assignedRider}
	cancelBySellerOrAdmin := transitionRule{
		roles:   []user.Role{user.RoleSeller, user.RoleAdmin},
		precond: ownCustomerOrSeller,
	}
	refundByAdmin := transitionRule{roles: []user.Role{user.RoleAdmin}, precond: paymentWasPaid}

	return map[Status]map[Status]transitionRule{
		StatusPending: {
			StatusConfirmed: sellerOnly,
			StatusCancelled: {
				roles:   []user.Role{user.RoleCustomer, user.RoleSeller, user.RoleAdmin},
				precond: ownCustomerOrSeller,
			},
		},
		StatusConfirmed: {
			StatusPreparing: sellerOnly,
			StatusCancelled: cancelBySellerOrAdmin,
		},
		StatusPreparing: {
			StatusAssignedToRider: sellerOrAdmin,
			StatusCancelled:       cancelBySellerOrAdmin,
		},
		StatusAssignedToRider: {
			StatusPickedUp:  riderOnly,
			StatusCancelled: cancelBySellerOrAdmin,
		},
		StatusPickedUp: {
			StatusOnTheWay:  riderOnly,
			StatusCancelled: cancelBySellerOrAdmin,
		},
		StatusOnTheWay: {
			StatusDelivered: riderOnly,
			StatusCancelled: cancelBySellerOrAdmin,
		},
		StatusDelivered: {
			StatusRefunded: refundByAdmin,
		},
		StatusCancelled: {
			StatusRefunded: refundByAdmin,
		},
	}
}
