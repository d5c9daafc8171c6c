package delivery

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// MinRating is the lowest rating a seller may give a rider.
	MinRating = 1

	// MaxRating is the highest rating a seller may give a rider.
	MaxRating = 5
)

// ErrRatingIsNotConstructed is returned for ratings not created through a
// constructor.
var ErrRatingIsNotConstructed = errors.New("rider rating is not constructed")

// RiderRating is a seller's score for a rider over one delivered order.
// At most one rating exists per (order, rider) pair; the repository enforces
// the uniqueness, the eligibility of the seller is the handler's concern.
type RiderRating struct {
	id       kernel.UUID
	orderID  kernel.UUID
	riderID  kernel.UUID
	sellerID kernel.UUID

	rating    int
	comment   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRiderRating creates a rating. The score must fall inside
// [MinRating, MaxRating]; the comment may be empty.
func NewRiderRating(
	id, orderID, riderID, sellerID kernel.UUID,
	rating int,
	comment string,
	now time.Time,
) (*RiderRating, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		riderID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &RiderRating{
		id:        id,
		orderID:   orderID,
		riderID:   riderID,
		sellerID:  sellerID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreRiderRating reconstructs the rating from persistence.
func RestoreRiderRating(
	id, orderID, riderID, sellerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*RiderRating, error) {
	restored, err := NewRiderRating(id, orderID, riderID, sellerID, rating, comment, createdAt)
	if err != nil {
		return nil, err
	}
	return restored, nil
}

// Validate ensures the rating was created through a constructor.
func (r *RiderRating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the rating identifier.
func (r *RiderRating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the delivered order the score refers to.
func (r *RiderRating) OrderID() kernel.UUID {
	return r.orderID
}

// RiderID returns the scored rider.
func (r *RiderRating) RiderID() kernel.UUID {
	return r.riderID
}

// SellerID returns the seller who left the score.
func (r *RiderRating) SellerID() kernel.UUID {
	return r.sellerID
}

// Rating returns the score.
func (r *RiderRating) Rating() int {
	return r.rating
}

// Comment returns the free-text note, possibly empty.
func (r *RiderRating) Comment() string {
	return r.comment
}

// CreatedAt returns when the score was left.
func (r *RiderRating) CreatedAt() time.Time {
	return r.createdAt
}
