// Package review holds product reviews. A review references one order item,
// may only be written once the owning order is delivered, and is unique per
// (user, product, order item) triple. New reviews start in pending moderation.
package review

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// MinRating is the lowest product score.
	MinRating = 1

	// MaxRating is the highest product score.
	MaxRating = 5
)

// Sentinel errors for the review gate, usable with errors.Is.
var (
	ErrOrderNotDelivered = errors.New("order is not delivered")
	ErrDuplicateReview   = errors.New("review already exists")

	// ErrReviewIsNotConstructed is returned for reviews not created through
	// a constructor.
	ErrReviewIsNotConstructed = errors.New("review is not constructed")
)

// DuplicateReviewError reports a second review for the same triple.
type DuplicateReviewError struct {
	UserID      kernel.UUID
	ProductID   kernel.UUID
	OrderItemID kernel.UUID
}

// NewDuplicateReviewError creates a DuplicateReviewError for a triple.
func NewDuplicateReviewError(userID, productID, orderItemID kernel.UUID) *DuplicateReviewError {
	return &DuplicateReviewError{UserID: userID, ProductID: productID, OrderItemID: orderItemID}
}

func (e *DuplicateReviewError) Error() string {
	return fmt.Sprintf("%s: user %s, product %s, order item %s",
		ErrDuplicateReview, e.UserID, e.ProductID, e.OrderItemID)
}

func (e *DuplicateReviewError) Unwrap() error {
	return ErrDuplicateReview
}

// ModerationStatus is the visibility state of a review.
type ModerationStatus int

const (
	// ModerationUnknown represents an invalid or undefined status.
	ModerationUnknown ModerationStatus = iota

	// ModerationPending means the review awaits a moderator.
	ModerationPending

	// ModerationApproved means the review is publicly visible.
	ModerationApproved

	// ModerationRejected means the review was taken down.
	ModerationRejected
)

func moderationStatusStrings() map[ModerationStatus]string {
	return map[ModerationStatus]string{
		ModerationPending:  "pending",
		ModerationApproved: "approved",
		ModerationRejected: "rejected",
	}
}

// ModerationStatusFromString parses the wire representation of a moderation
// status.
func ModerationStatusFromString(s string) (ModerationStatus, error) {
	for status, str := range moderationStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ModerationUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid moderation status", s))
}

// Validate returns an error for ModerationUnknown and any other undefined
// value.
func (s ModerationStatus) Validate() error {
	if _, ok := moderationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid moderation status", s))
	}
	return nil
}

func (s ModerationStatus) String() string {
	if str, ok := moderationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Review is a customer's score for a product they received. The delivered
// check and the uniqueness of the triple are enforced by the handler against
// the repository; the aggregate guards the score itself.
type Review struct {
	id          kernel.UUID
	userID      kernel.UUID
	productID   kernel.UUID
	orderItemID kernel.UUID

	rating    int
	comment   string
	status    ModerationStatus
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a review in pending moderation.
func NewReview(
	id, userID, productID, orderItemID kernel.UUID,
	rating int,
	comment string,
	now time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		productID.Validate(),
		orderItemID.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Review{
		id:          id,
		userID:      userID,
		productID:   productID,
		orderItemID: orderItemID,
		rating:      rating,
		comment:     comment,
		status:      ModerationPending,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreReview reconstructs the review from persistence.
func RestoreReview(
	id, userID, productID, orderItemID kernel.UUID,
	rating int,
	comment string,
	status ModerationStatus,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		productID.Validate(),
		orderItemID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Review{
		id:          id,
		userID:      userID,
		productID:   productID,
		orderItemID: orderItemID,
		rating:      rating,
		comment:     comment,
		status:      status,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// UserID returns the reviewing customer.
func (r *Review) UserID() kernel.UUID {
	return r.userID
}

// ProductID returns the reviewed product.
func (r *Review) ProductID() kernel.UUID {
	return r.productID
}

// OrderItemID returns the order line that proves the purchase.
func (r *Review) OrderItemID() kernel.UUID {
	return r.orderItemID
}

// Rating returns the score.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the free-text note, possibly empty.
func (r *Review) Comment() string {
	return r.comment
}

// Status returns the moderation state.
func (r *Review) Status() ModerationStatus {
	return r.status
}

// CreatedAt returns when the review was written.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// Approve makes the review publicly visible.
func (r *Review) Approve() {
	r.status = ModerationApproved
}

// Reject takes the review down.
func (r *Review) Reject() {
	r.status = ModerationRejected
}
