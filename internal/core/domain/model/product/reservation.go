package product

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ReservationStatus is the lifecycle state of a stock hold.
type ReservationStatus int

const (
	// ReservationUnknown represents an invalid or undefined status.
	ReservationUnknown ReservationStatus = iota

	// ReservationHeld quantity is subtracted from available stock but not yet
	// from the committed stock count.
	ReservationHeld

	// ReservationCommitted quantity has been finalized into the stock count.
	ReservationCommitted

	// ReservationReleased quantity was returned to available stock.
	ReservationReleased
)

// String returns the persisted representation of the reservation status.
func (s ReservationStatus) String() string {
	switch s {
	case ReservationHeld:
		return "held"
	case ReservationCommitted:
		return "committed"
	case ReservationReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Reservation is a temporary hold on product stock, created by Product.Reserve
// and finalized or undone through the owning aggregate. The row survives its
// terminal state for auditability; only held reservations count against
// available stock.
type Reservation struct {
	id       kernel.UUID
	orderID  *kernel.UUID
	quantity int
	status   ReservationStatus
}

func newReservation(id kernel.UUID, quantity int) *Reservation {
	return &Reservation{
		id:       id,
		quantity: quantity,
		status:   ReservationHeld,
	}
}

// RestoreReservation reconstructs a reservation from persistence.
func RestoreReservation(
	id kernel.UUID,
	orderID *kernel.UUID,
	quantity int,
	status ReservationStatus,
) (*Reservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidError("reservation quantity must be at least 1")
	}
	if status != ReservationHeld && status != ReservationCommitted && status != ReservationReleased {
		return nil, errs.NewValueIsInvalidError("reservation status is invalid")
	}

	return &Reservation{
		id:       id,
		orderID:  orderID,
		quantity: quantity,
		status:   status,
	}, nil
}

// ID returns the reservation handle.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this hold was taken for, or nil before assembly
// binds it.
func (r *Reservation) OrderID() *kernel.UUID {
	return r.orderID
}

// Quantity returns the number of units held.
func (r *Reservation) Quantity() int {
	return r.quantity
}

// Status returns the reservation lifecycle state.
func (r *Reservation) Status() ReservationStatus {
	return r.status
}

// IsHeld reports whether the reservation still counts against available stock.
func (r *Reservation) IsHeld() bool {
	return r.status == ReservationHeld
}

// AttachOrder binds a held reservation to the order being assembled for it.
// Binding a committed or released reservation fails with UnknownReservation.
func (r *Reservation) AttachOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if r.status != ReservationHeld {
		return NewUnknownReservationError(r.id)
	}

	r.orderID = &orderID
	return nil
}
