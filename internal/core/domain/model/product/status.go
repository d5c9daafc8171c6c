package product

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the catalog visibility of a product.
//
// StatusOutOfStock is derived: the ledger sets it whenever the committed stock
// quantity drops to zero, and clears it on restock. StatusInactive is a manual
// seller decision and is never overridden by stock movements.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive products are purchasable and appear in carts.
	StatusActive

	// StatusInactive products were manually withdrawn by their seller.
	StatusInactive

	// StatusOutOfStock products have no committed stock left.
	StatusOutOfStock
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:     "active",
		StatusInactive:   "inactive",
		StatusOutOfStock: "out_of_stock",
	}
}

// Validate returns an error for StatusUnknown and any other undefined value.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid product status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
