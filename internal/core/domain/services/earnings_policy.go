package services

import (
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// EarningsPolicy computes a rider's compensation for one delivered order:
// a flat base fee, a per-kilometer distance fee, and the customer's tip,
// passed through unchanged. The components are frozen into a RiderEarning
// at the moment of delivery and never recomputed.
type EarningsPolicy struct {
	baseFee  kernel.Money
	perKmFee kernel.Money
}

// NewEarningsPolicy creates a policy from the configured fee components.
func NewEarningsPolicy(baseFee, perKmFee kernel.Money) EarningsPolicy {
	return EarningsPolicy{baseFee: baseFee, perKmFee: perKmFee}
}

// Earning is the computed breakdown for one delivery.
type Earning struct {
	BaseFee     kernel.Money
	DistanceFee kernel.Money
	TipAmount   kernel.Money
}

// Total returns the sum of the three components.
func (e Earning) Total() kernel.Money {
	return e.BaseFee.Add(e.DistanceFee).Add(e.TipAmount)
}

// Compute derives the earning breakdown for a delivered order. Distance is
// whole kilometers as reported by the rider's app; the tip comes from the
// customer and may be zero.
func (p EarningsPolicy) Compute(distanceKm int, tip kernel.Money) (Earning, error) {
	if distanceKm < 0 {
		return Earning{}, errs.NewValueIsInvalidError("distance cannot be negative")
	}

	return Earning{
		BaseFee:     p.baseFee,
		DistanceFee: p.perKmFee.MulQuantity(distanceKm),
		TipAmount:   tip,
	}, nil
}

// NewRiderEarning materializes the breakdown into the earning record for a
// delivered order.
func (p EarningsPolicy) NewRiderEarning(
	d *delivery.Delivery,
	breakdown Earning,
) (*delivery.RiderEarning, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return delivery.NewRiderEarning(
		kernel.NewUUID(), d.RiderID(), d.OrderID(),
		breakdown.BaseFee, breakdown.DistanceFee, breakdown.TipAmount,
		*d.DeliveredAt(),
	)
}
