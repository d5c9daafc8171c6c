package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart is empty")
)

// CheckoutCommand represents a request to turn a customer's cart into orders.
// A cart spanning several sellers produces one order per seller.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	shippingAddress string
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The shipping address and
// payment method apply to every order produced from the cart.
func NewCheckoutCommand(
	customerID kernel.UUID,
	shippingAddress string,
	paymentMethod order.PaymentMethod,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setShippingAddress(shippingAddress),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the checking-out customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the destination captured for all produced orders.
func (c CheckoutCommand) ShippingAddress() string {
	return c.shippingAddress
}

// PaymentMethod returns the chosen settlement method.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
