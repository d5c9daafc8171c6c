package delivery

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// EarningStatus is the payout state of a rider earning.
type EarningStatus int

const (
	// EarningUnknown represents an invalid or undefined status.
	EarningUnknown EarningStatus = iota

	// EarningPending means the earning is recorded but not yet paid out.
	EarningPending

	// EarningPaid means the payout went through. The record is immutable
	// from here on.
	EarningPaid
)

func earningStatusStrings() map[EarningStatus]string {
	return map[EarningStatus]string{
		EarningPending: "pending",
		EarningPaid:    "paid",
	}
}

// EarningStatusFromString parses the wire representation of an earning status.
func EarningStatusFromString(s string) (EarningStatus, error) {
	for status, str := range earningStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return EarningUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid earning status", s))
}

// Validate returns an error for EarningUnknown and any other undefined value.
func (s EarningStatus) Validate() error {
	if _, ok := earningStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid earning status", s))
	}
	return nil
}

func (s EarningStatus) String() string {
	if str, ok := earningStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ErrEarningIsNotConstructed is returned for earnings not created through a
// constructor.
var ErrEarningIsNotConstructed = errors.New("rider earning is not constructed")

// RiderEarning is the compensation for one delivered order. It is computed
// exactly once, when the delivery reaches the delivered state, and the three
// components are frozen at that moment.
type RiderEarning struct {
	id      kernel.UUID
	riderID kernel.UUID
	orderID kernel.UUID

	baseFee      kernel.Money
	distanceFee  kernel.Money
	tipAmount    kernel.Money
	totalEarning kernel.Money

	status    EarningStatus
	createdAt time.Time
	paidAt    *time.Time

	guard guard.ConstructorGuard
}

// NewRiderEarning records the earning for a delivered order. The total is
// derived from the components here and never recomputed.
func NewRiderEarning(
	id, riderID, orderID kernel.UUID,
	baseFee, distanceFee, tipAmount kernel.Money,
	now time.Time,
) (*RiderEarning, error) {
	if err := errors.Join(
		id.Validate(),
		riderID.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}

	return &RiderEarning{
		id:           id,
		riderID:      riderID,
		orderID:      orderID,
		baseFee:      baseFee,
		distanceFee:  distanceFee,
		tipAmount:    tipAmount,
		totalEarning: baseFee.Add(distanceFee).Add(tipAmount),
		status:       EarningPending,
		createdAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRiderEarning reconstructs the earning from persistence.
func RestoreRiderEarning(
	id, riderID, orderID kernel.UUID,
	baseFee, distanceFee, tipAmount, totalEarning kernel.Money,
	status EarningStatus,
	createdAt time.Time,
	paidAt *time.Time,
) (*RiderEarning, error) {
	if err := errors.Join(
		id.Validate(),
		riderID.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if !baseFee.Add(distanceFee).Add(tipAmount).IsEqual(totalEarning) {
		return nil, errs.NewValueIsInvalidError("earning total does not match the sum of its components")
	}

	return &RiderEarning{
		id:           id,
		riderID:      riderID,
		orderID:      orderID,
		baseFee:      baseFee,
		distanceFee:  distanceFee,
		tipAmount:    tipAmount,
		totalEarning: totalEarning,
		status:       status,
		createdAt:    createdAt,
		paidAt:       paidAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the earning was created through a constructor.
func (e *RiderEarning) Validate() error {
	if e == nil {
		return ErrEarningIsNotConstructed
	}
	return e.guard.Validate(ErrEarningIsNotConstructed)
}

// ID returns the earning identifier.
func (e *RiderEarning) ID() kernel.UUID {
	return e.id
}

// RiderID returns the rider being compensated.
func (e *RiderEarning) RiderID() kernel.UUID {
	return e.riderID
}

// OrderID returns the delivered order.
func (e *RiderEarning) OrderID() kernel.UUID {
	return e.orderID
}

// BaseFee returns the flat per-delivery component.
func (e *RiderEarning) BaseFee() kernel.Money {
	return e.baseFee
}

// DistanceFee returns the distance-dependent component.
func (e *RiderEarning) DistanceFee() kernel.Money {
	return e.distanceFee
}

// TipAmount returns the customer tip component.
func (e *RiderEarning) TipAmount() kernel.Money {
	return e.tipAmount
}

// TotalEarning returns the frozen sum of the three components.
func (e *RiderEarning) TotalEarning() kernel.Money {
	return e.totalEarning
}

// Status returns the payout state.
func (e *RiderEarning) Status() EarningStatus {
	return e.status
}

// CreatedAt returns when the earning was recorded.
func (e *RiderEarning) CreatedAt() time.Time {
	return e.createdAt
}

// PaidAt returns when the payout went through, or nil while pending.
func (e *RiderEarning) PaidAt() *time.Time {
	return e.paidAt
}

// MarkPaid settles a pending earning. Paid earnings are immutable, so a
// second call fails.
func (e *RiderEarning) MarkPaid(now time.Time) error {
	if e.status == EarningPaid {
		return ErrEarningAlreadyPaid
	}

	e.status = EarningPaid
	e.paidAt = &now
	return nil
}
