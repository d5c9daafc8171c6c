package delivery

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// SubStatus is the lifecycle state of one delivery attempt. It runs ahead of
// the order status: the handler that advances a delivery mirrors the change
// into the owning order.
type SubStatus int

const (
	// SubStatusUnknown represents an invalid or undefined status.
	SubStatusUnknown SubStatus = iota

	// SubStatusAssigned is the initial state right after rider assignment.
	SubStatusAssigned

	// SubStatusPickedUp means the rider collected the package.
	SubStatusPickedUp

	// SubStatusInTransit means the rider is en route to the customer.
	SubStatusInTransit

	// SubStatusDelivered is the successful terminal state.
	SubStatusDelivered

	// SubStatusFailed is the unsuccessful terminal state. The order becomes
	// re-assignable; this record stays as history.
	SubStatusFailed
)

func subStatusStrings() map[SubStatus]string {
	return map[SubStatus]string{
		SubStatusAssigned:  "assigned",
		SubStatusPickedUp:  "picked_up",
		SubStatusInTransit: "in_transit",
		SubStatusDelivered: "delivered",
		SubStatusFailed:    "failed",
	}
}

// SubStatusFromString parses the wire representation of a delivery sub-status.
func SubStatusFromString(s string) (SubStatus, error) {
	for status, str := range subStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return SubStatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid delivery status", s))
}

// Validate returns an error for SubStatusUnknown and any other undefined value.
func (s SubStatus) Validate() error {
	if _, ok := subStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s SubStatus) String() string {
	if str, ok := subStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the attempt is finished, successfully or not.
func (s SubStatus) IsTerminal() bool {
	return s == SubStatusDelivered || s == SubStatusFailed
}

// subStatusTransitions defines the legal edges. Failure is reachable from any
// non-terminal state; success only through the full chain.
func subStatusTransitions() map[SubStatus][]SubStatus {
	return map[SubStatus][]SubStatus{
		SubStatusAssigned:  {SubStatusPickedUp, SubStatusFailed},
		SubStatusPickedUp:  {SubStatusInTransit, SubStatusFailed},
		SubStatusInTransit: {SubStatusDelivered, SubStatusFailed},
	}
}

// ErrDeliveryIsNotConstructed is returned for deliveries not created through
// a constructor.
var ErrDeliveryIsNotConstructed = errors.New("delivery is not constructed")

// Delivery is one assignment attempt of a rider to an order. Records are
// append-only: once failed or delivered they never change again.
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	riderID   kernel.UUID
	subStatus SubStatus

	assignedAt  time.Time
	pickedUpAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	failedAt    *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates an assignment attempt in the assigned state.
func NewDelivery(id, orderID, riderID kernel.UUID, now time.Time) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		riderID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:         id,
		orderID:    orderID,
		riderID:    riderID,
		subStatus:  SubStatusAssigned,
		assignedAt: now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs the aggregate from persistence.
func RestoreDelivery(
	id, orderID, riderID kernel.UUID,
	subStatus SubStatus,
	assignedAt time.Time,
	pickedUpAt, inTransitAt, deliveredAt, failedAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		riderID.Validate(),
		subStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:          id,
		orderID:     orderID,
		riderID:     riderID,
		subStatus:   subStatus,
		assignedAt:  assignedAt,
		pickedUpAt:  pickedUpAt,
		inTransitAt: inTransitAt,
		deliveredAt: deliveredAt,
		failedAt:    failedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this attempt belongs to.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// RiderID returns the rider holding this attempt.
func (d *Delivery) RiderID() kernel.UUID {
	return d.riderID
}

// SubStatus returns the attempt lifecycle state.
func (d *Delivery) SubStatus() SubStatus {
	return d.subStatus
}

// AssignedAt returns when the attempt was created.
func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the rider collected the package, if they did.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// InTransitAt returns when the rider left for the customer, if they did.
func (d *Delivery) InTransitAt() *time.Time {
	return d.inTransitAt
}

// DeliveredAt returns when the package was handed over, if it was.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// FailedAt returns when the attempt was abandoned, if it was.
func (d *Delivery) FailedAt() *time.Time {
	return d.failedAt
}

// IsActive reports whether this attempt still blocks re-assignment.
func (d *Delivery) IsActive() bool {
	return !d.subStatus.IsTerminal()
}

// TransitionTo advances the attempt along a legal edge and stamps the
// timestamp of the new state. Illegal edges leave the record unchanged.
func (d *Delivery) TransitionTo(target SubStatus, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	allowed := false
	for _, next := range subStatusTransitions()[d.subStatus] {
		if next == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return NewIllegalSubStatusError(d.subStatus, target)
	}

	d.subStatus = target
	switch target {
	case SubStatusPickedUp:
		d.pickedUpAt = &now
	case SubStatusInTransit:
		d.inTransitAt = &now
	case SubStatusDelivered:
		d.deliveredAt = &now
	case SubStatusFailed:
		d.failedAt = &now
	}
	return nil
}
