package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when assembling an order without items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")

	// ErrTotalAmountMismatch is returned when a persisted total does not match
	// the sum of the order's items.
	ErrTotalAmountMismatch = errors.New("order total does not match the sum of its items")
)

// Item is one order line: a product, the purchased quantity, and the unit
// price captured at the moment the order was assembled. The captured price is
// never recomputed, even when the product's live price changes later.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	quantity    int
	priceAtTime kernel.Money
}

// NewItem creates a validated order line with a point-in-time price capture.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, priceAtTime kernel.Money) (Item, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:          id,
		productID:   productID,
		quantity:    quantity,
		priceAtTime: priceAtTime,
	}, nil
}

// ID returns the order line identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the purchased product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtTime returns the unit price captured at assembly.
func (i Item) PriceAtTime() kernel.Money {
	return i.priceAtTime
}

// Subtotal returns priceAtTime multiplied by quantity.
func (i Item) Subtotal() kernel.Money {
	return i.priceAtTime.MulQuantity(i.quantity)
}

// Order is the aggregate root of the fulfillment state machine. One order
// belongs to exactly one seller; a multi-seller checkout produces several
// orders. Once created, an order is owned by the system: neither customer nor
// seller may delete it, only drive it through permitted transitions.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	sellerID   kernel.UUID
	riderID    *kernel.UUID

	items       []Item
	totalAmount kernel.Money

	status          Status
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	shippingAddress string

	createdAt   time.Time
	updatedAt   time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder assembles an order in pending status from one seller partition of a
// checkout. The total amount is fixed here as the sum of the captured item
// prices and never changes afterwards.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	sellerID kernel.UUID,
	shippingAddress string,
	paymentMethod PaymentMethod,
	items []Item,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		sellerID.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}
	if shippingAddress == "" {
		return nil, errs.NewValueIsRequiredError("shippingAddress")
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	total := kernel.Money{}
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		sellerID:        sellerID,
		items:           items,
		totalAmount:     total,
		status:          StatusPending,
		paymentMethod:   paymentMethod,
		paymentStatus:   PaymentPending,
		shippingAddress: shippingAddress,
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs the aggregate from persistence. The stored total
// is checked against the sum of the items so a drifted row cannot re-enter
// the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	sellerID kernel.UUID,
	riderID *kernel.UUID,
	shippingAddress string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	items []Item,
	totalAmount kernel.Money,
	createdAt time.Time,
	updatedAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		sellerID.Validate(),
		paymentMethod.Validate(),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	sum := kernel.Money{}
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	if !sum.IsEqual(totalAmount) {
		return nil, ErrTotalAmountMismatch
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		sellerID:        sellerID,
		riderID:         riderID,
		items:           items,
		totalAmount:     totalAmount,
		status:          status,
		paymentMethod:   paymentMethod,
		paymentStatus:   paymentStatus,
		shippingAddress: shippingAddress,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		deliveredAt:     deliveredAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SellerID returns the single seller this order belongs to.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// RiderID returns the currently assigned rider, or nil before assignment.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the fixed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the recorded payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the recorded settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ShippingAddress returns the address captured at checkout.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// CreatedAt returns the assembly time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last transition time.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeliveredAt returns the delivery time, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// CanTransitionTo checks an edge and the actor's permission without mutating
// the order. Returns nil when TransitionTo with the same arguments would
// succeed.
func (o *Order) CanTransitionTo(target Status, actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsActive() {
		return NewUnauthorizedError(actor.ID(), actor.Role(), "act with an inactive account")
	}

	rule, ok := transitionTable()[o.status][target]
	if !ok {
		return NewIllegalTransitionError(o.status, target)
	}
	if !rule.allowsRole(actor.Role()) {
		return NewUnauthorizedError(actor.ID(), actor.Role(),
			fmt.Sprintf("transition an order from %s to %s", o.status, target))
	}
	if rule.precond != nil {
		if err := rule.precond(o, actor); err != nil {
			return err
		}
	}
	return nil
}

// TransitionTo moves the order along one edge of the state machine on behalf
// of an actor. On any failure the order is left unchanged; there are no
// partial effects.
func (o *Order) TransitionTo(target Status, actor user.Actor, now time.Time) error {
	if err := o.CanTransitionTo(target, actor); err != nil {
		return err
	}

	o.status = target
	o.updatedAt = now

	switch target {
	case StatusDelivered:
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	case StatusRefunded:
		o.paymentStatus = PaymentRefunded
	}

	return nil
}

// AssignRider performs the preparing → assigned_to_rider transition and binds
// the rider in the same step. The rider's own eligibility (role, account
// status, no active delivery) is the assignment engine's concern.
func (o *Order) AssignRider(riderID kernel.UUID, actor user.Actor, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if err := o.TransitionTo(StatusAssignedToRider, actor, now); err != nil {
		return err
	}

	o.riderID = &riderID
	return nil
}

// ClearRider detaches a rider whose delivery failed, leaving the order in
// assigned_to_rider history but eligible for a fresh assignment.
func (o *Order) ClearRider(now time.Time) {
	o.riderID = nil
	o.status = StatusPreparing
	o.updatedAt = now
}

// RecordPayment stores an externally reported settlement state. The core
// never talks to a gateway; it only records the outcome.
func (o *Order) RecordPayment(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}
