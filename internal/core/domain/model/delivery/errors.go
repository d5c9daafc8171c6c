package delivery

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

// Sentinel errors for rider assignment and earnings, usable with errors.Is.
var (
	ErrRiderUnavailable       = errors.New("rider unavailable")
	ErrAlreadyAssigned        = errors.New("order already assigned")
	ErrEarningAlreadyRecorded = errors.New("earning already recorded")
	ErrEarningAlreadyPaid     = errors.New("earning already paid")
	ErrIllegalSubStatus       = errors.New("illegal delivery transition")
)

// RiderUnavailableError reports an assignment attempt against a user who is
// not an active rider.
type RiderUnavailableError struct {
	RiderID kernel.UUID
}

// NewRiderUnavailableError creates a RiderUnavailableError for a rider.
func NewRiderUnavailableError(riderID kernel.UUID) *RiderUnavailableError {
	return &RiderUnavailableError{RiderID: riderID}
}

func (e *RiderUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRiderUnavailable, e.RiderID)
}

func (e *RiderUnavailableError) Unwrap() error {
	return ErrRiderUnavailable
}

// AlreadyAssignedError reports an assignment attempt against an order that
// already has a delivery which has not failed.
type AlreadyAssignedError struct {
	OrderID kernel.UUID
	RiderID kernel.UUID
}

// NewAlreadyAssignedError creates an AlreadyAssignedError naming the order and
// the rider currently holding it.
func NewAlreadyAssignedError(orderID, riderID kernel.UUID) *AlreadyAssignedError {
	return &AlreadyAssignedError{OrderID: orderID, RiderID: riderID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: order %s is held by rider %s", ErrAlreadyAssigned, e.OrderID, e.RiderID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// EarningAlreadyRecordedError reports a second earning computation for the
// same order and rider.
type EarningAlreadyRecordedError struct {
	OrderID kernel.UUID
	RiderID kernel.UUID
}

// NewEarningAlreadyRecordedError creates an EarningAlreadyRecordedError.
func NewEarningAlreadyRecordedError(orderID, riderID kernel.UUID) *EarningAlreadyRecordedError {
	return &EarningAlreadyRecordedError{OrderID: orderID, RiderID: riderID}
}

func (e *EarningAlreadyRecordedError) Error() string {
	return fmt.Sprintf("%s: order %s, rider %s", ErrEarningAlreadyRecorded, e.OrderID, e.RiderID)
}

func (e *EarningAlreadyRecordedError) Unwrap() error {
	return ErrEarningAlreadyRecorded
}

// IllegalSubStatusError reports a delivery transition along an edge the
// sub-status machine does not define.
type IllegalSubStatusError struct {
	From SubStatus
	To   SubStatus
}

// NewIllegalSubStatusError creates an IllegalSubStatusError for an edge.
func NewIllegalSubStatusError(from, to SubStatus) *IllegalSubStatusError {
	return &IllegalSubStatusError{From: from, To: to}
}

func (e *IllegalSubStatusError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalSubStatus, e.From, e.To)
}

func (e *IllegalSubStatusError) Unwrap() error {
	return ErrIllegalSubStatus
}
