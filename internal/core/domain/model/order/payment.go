package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay. The core records the choice
// only; gateway integration is out of scope.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentCashOnDelivery settles with the rider at the door.
	PaymentCashOnDelivery

	// PaymentCreditCard settles through an external card gateway.
	PaymentCreditCard

	// PaymentBankTransfer settles through a manual bank transfer.
	PaymentBankTransfer
)

func paymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCashOnDelivery: "cash_on_delivery",
		PaymentCreditCard:     "credit_card",
		PaymentBankTransfer:   "bank_transfer",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range paymentMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid payment method", s))
}

// Validate returns an error for undefined payment method values.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if s, ok := paymentMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// PaymentStatus is the recorded settlement state of an order.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means no settlement has been recorded yet.
	PaymentPending

	// PaymentPaid means settlement was recorded.
	PaymentPaid

	// PaymentFailed means settlement was attempted and failed.
	PaymentFailed

	// PaymentRefunded means a recorded settlement was returned.
	PaymentRefunded
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// Validate returns an error for undefined payment status values.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
