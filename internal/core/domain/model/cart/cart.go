// Package cart implements the per-customer shopping basket. A cart is an
// ephemeral aggregate of (product, quantity) entries: it carries no price
// snapshot, prices are resolved live from the catalog at read and checkout
// time. Entries are unique per product and removed when checkout converts
// them into orders.
package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart was not created through
// NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// ErrEntryNotFound is returned when updating or removing a product that is not
// in the cart.
var ErrEntryNotFound = errors.New("cart entry not found")

// Entry is one (product, quantity) pair in a cart.
type Entry struct {
	productID kernel.UUID
	quantity  int
}

// ProductID returns the carted product.
func (e Entry) ProductID() kernel.UUID {
	return e.productID
}

// Quantity returns the requested quantity, always at least 1.
func (e Entry) Quantity() int {
	return e.quantity
}

// Cart is the basket aggregate for one customer.
type Cart struct {
	customerID kernel.UUID
	entries    []Entry

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for a customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart and its entries from persistence.
func RestoreCart(customerID kernel.UUID, entries []Entry) (*Cart, error) {
	cart, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if err := e.productID.Validate(); err != nil {
			return nil, err
		}
		if e.quantity < 1 {
			return nil, errs.NewValueIsInvalidError("cart entry quantity must be at least 1")
		}
	}
	cart.entries = entries
	return cart, nil
}

// RestoreEntry reconstructs a single cart entry from persistence.
func RestoreEntry(productID kernel.UUID, quantity int) Entry {
	return Entry{productID: productID, quantity: quantity}
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Entries returns the cart content in insertion order.
func (c *Cart) Entries() []Entry {
	return c.entries
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Add puts quantity units of a product into the cart. A repeat add for the
// same product merges additively into the existing entry.
func (c *Cart) Add(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for i := range c.entries {
		if c.entries[i].productID.IsEqual(productID) {
			c.entries[i].quantity += quantity
			return nil
		}
	}

	c.entries = append(c.entries, Entry{productID: productID, quantity: quantity})
	return nil
}

// SetQuantity replaces the quantity of an existing entry.
// A quantity of zero removes the entry.
func (c *Cart) SetQuantity(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if quantity == 0 {
		return c.Remove(productID)
	}

	for i := range c.entries {
		if c.entries[i].productID.IsEqual(productID) {
			c.entries[i].quantity = quantity
			return nil
		}
	}
	return ErrEntryNotFound
}

// Remove deletes a product's entry from the cart.
func (c *Cart) Remove(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for i := range c.entries {
		if c.entries[i].productID.IsEqual(productID) {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// RemoveAll deletes the entries for the given products, typically after
// checkout converted them into an order. Unknown products are skipped.
func (c *Cart) RemoveAll(productIDs []kernel.UUID) {
	for _, id := range productIDs {
		_ = c.Remove(id)
	}
}
