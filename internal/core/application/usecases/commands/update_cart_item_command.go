package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to set the quantity of a cart
// entry. Quantity zero removes the entry.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart entry.
// Quantity must not be negative; zero means removal.
func NewUpdateCartItemCommand(customerID, productID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c UpdateCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the product whose entry is changed.
func (c UpdateCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new quantity; zero removes the entry.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
