package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the inventory ledger aggregate. It owns the authoritative stock
// count for one catalog product together with every hold taken against it.
//
// Invariants:
//   - stockQuantity is never negative
//   - status is out_of_stock if and only if stockQuantity drops to zero,
//     unless the seller manually deactivated the product
//   - available stock equals stockQuantity minus the sum of held reservations,
//     and a reservation is only granted when it fits into available stock
type Product struct {
	id         kernel.UUID
	sellerID   kernel.UUID
	categoryID kernel.UUID

	price         kernel.Money
	stockQuantity int
	status        Status

	reservations []*Reservation

	guard guard.ConstructorGuard
}

// NewProduct creates a product ledger entry with an initial stock count.
// A product created with zero stock starts in out_of_stock status.
func NewProduct(
	id kernel.UUID,
	sellerID kernel.UUID,
	categoryID kernel.UUID,
	price kernel.Money,
	stockQuantity int,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
		categoryID.Validate(),
	); err != nil {
		return nil, err
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}

	status := StatusActive
	if stockQuantity == 0 {
		status = StatusOutOfStock
	}

	return &Product{
		id:            id,
		sellerID:      sellerID,
		categoryID:    categoryID,
		price:         price,
		stockQuantity: stockQuantity,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs the aggregate from persistence, including its
// reservation rows. A row whose held reservations claim more units than the
// stock quantity is rejected with ErrHeldExceedsStock.
func RestoreProduct(
	id kernel.UUID,
	sellerID kernel.UUID,
	categoryID kernel.UUID,
	price kernel.Money,
	stockQuantity int,
	status Status,
	reservations []*Reservation,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
		categoryID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}

	held := 0
	for _, r := range reservations {
		if r.IsHeld() {
			held += r.quantity
		}
	}
	if held > stockQuantity {
		return nil, ErrHeldExceedsStock
	}

	return &Product{
		id:            id,
		sellerID:      sellerID,
		categoryID:    categoryID,
		price:         price,
		stockQuantity: stockQuantity,
		status:        status,
		reservations:  reservations,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the owning seller.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// CategoryID returns the catalog category.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StockQuantity returns the committed stock count.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// Status returns the catalog visibility status.
func (p *Product) Status() Status {
	return p.status
}

// Reservations returns every hold recorded against the product, including
// committed and released ones.
func (p *Product) Reservations() []*Reservation {
	return p.reservations
}

// Available returns the stock quantity not claimed by held reservations.
func (p *Product) Available() int {
	held := 0
	for _, r := range p.reservations {
		if r.IsHeld() {
			held += r.quantity
		}
	}
	return p.stockQuantity - held
}

// IsPurchasable reports whether the product may be added to carts.
func (p *Product) IsPurchasable() bool {
	return p.status == StatusActive
}

// Reserve places a hold on quantity units and returns the reservation handle.
// Fails with InsufficientStock when the request exceeds available stock.
func (p *Product) Reserve(quantity int) (*Reservation, error) {
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if available := p.Available(); quantity > available {
		return nil, NewInsufficientStockError(p.id, quantity, available)
	}

	reservation := newReservation(kernel.NewUUID(), quantity)
	p.reservations = append(p.reservations, reservation)
	return reservation, nil
}

// CommitReservation finalizes a held reservation: the quantity leaves the
// committed stock count and the hold is retired. Committing an already
// committed handle is a no-op; committing a released or unknown handle fails
// with UnknownReservation.
func (p *Product) CommitReservation(reservationID kernel.UUID) error {
	reservation := p.findReservation(reservationID)
	if reservation == nil {
		return NewUnknownReservationError(reservationID)
	}

	switch reservation.status {
	case ReservationCommitted:
		return nil
	case ReservationReleased:
		return NewUnknownReservationError(reservationID)
	}

	reservation.status = ReservationCommitted
	p.stockQuantity -= reservation.quantity
	if p.stockQuantity <= 0 && p.status == StatusActive {
		p.status = StatusOutOfStock
	}
	return nil
}

// ReleaseReservation returns a held quantity to available stock.
// Fails with UnknownReservation if the handle was committed, released, or
// never existed.
func (p *Product) ReleaseReservation(reservationID kernel.UUID) error {
	reservation := p.findReservation(reservationID)
	if reservation == nil || reservation.status != ReservationHeld {
		return NewUnknownReservationError(reservationID)
	}

	reservation.status = ReservationReleased
	return nil
}

// HeldReservationForOrder returns the outstanding hold bound to an order,
// or nil when the order's inventory was already committed or released.
func (p *Product) HeldReservationForOrder(orderID kernel.UUID) *Reservation {
	for _, r := range p.reservations {
		if r.IsHeld() && r.orderID != nil && r.orderID.IsEqual(orderID) {
			return r
		}
	}
	return nil
}

// Restock returns committed quantity to stock, compensating a cancelled order.
// It restores active status only when the product is out_of_stock; a manual
// seller deactivation stays in place.
func (p *Product) Restock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stockQuantity += quantity
	if p.status == StatusOutOfStock && p.stockQuantity > 0 {
		p.status = StatusActive
	}
	return nil
}

// Deactivate manually withdraws the product from sale. Ledger writes keep
// working; only purchasability changes.
func (p *Product) Deactivate() {
	p.status = StatusInactive
}

// Activate restores a manually deactivated product, landing on out_of_stock
// when no committed stock remains.
func (p *Product) Activate() {
	if p.stockQuantity <= 0 {
		p.status = StatusOutOfStock
		return
	}
	p.status = StatusActive
}

func (p *Product) findReservation(id kernel.UUID) *Reservation {
	for _, r := range p.reservations {
		if r.id.IsEqual(id) {
			return r
		}
	}
	return nil
}
