package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put a product into a customer's
// cart. Adding a product already in the cart merges the quantities.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product to a cart.
// Validates that both identifiers are set and that quantity is positive.
func NewAddCartItemCommand(customerID, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the product being added.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
