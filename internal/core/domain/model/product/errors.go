package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

// Sentinel errors for the inventory ledger, usable with errors.Is.
var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrUnknownReservation = errors.New("unknown reservation")
	ErrProductUnavailable = errors.New("product unavailable")

	// ErrHeldExceedsStock is returned when persisted held reservations claim
	// more units than the stock quantity the row carries.
	ErrHeldExceedsStock = errors.New("held reservations exceed the product stock quantity")
)

// InsufficientStockError reports a reservation attempt exceeding available stock.
// It names the offending product and both quantities so callers can surface a
// specific failure instead of a generic one.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for a product.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d available, %d requested",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// UnknownReservationError reports an operation on a reservation handle that is
// not held: it was already committed, already released, or never existed.
type UnknownReservationError struct {
	ReservationID kernel.UUID
}

// NewUnknownReservationError creates an UnknownReservationError for a handle.
func NewUnknownReservationError(reservationID kernel.UUID) *UnknownReservationError {
	return &UnknownReservationError{ReservationID: reservationID}
}

func (e *UnknownReservationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownReservation, e.ReservationID)
}

func (e *UnknownReservationError) Unwrap() error {
	return ErrUnknownReservation
}

// ProductUnavailableError reports an attempt to cart or buy a product whose
// status is not active.
type ProductUnavailableError struct {
	ProductID kernel.UUID
	Status    Status
}

// NewProductUnavailableError creates a ProductUnavailableError for a product.
func NewProductUnavailableError(productID kernel.UUID, status Status) *ProductUnavailableError {
	return &ProductUnavailableError{ProductID: productID, Status: status}
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("%s: product %s is %s", ErrProductUnavailable, e.ProductID, e.Status)
}

func (e *ProductUnavailableError) Unwrap() error {
	return ErrProductUnavailable
}
