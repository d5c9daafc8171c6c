package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"marketplace/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing a Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a fixed-point currency amount with two decimal places, stored as an
// integer number of cents. Prices, order totals, and rider fees are all
// non-negative Money values; arithmetic never goes through floating point.
//
// The zero value is a valid amount of 0.00.
type Money struct {
	cents int64
}

// MoneyFromCents creates a Money from an integer number of cents.
// Returns ErrMoneyIsNegative for negative amounts.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// MoneyFromString parses a decimal amount such as "12.34" or "5".
// At most two fractional digits are accepted.
func MoneyFromString(s string) (Money, error) {
	whole, frac, found := strings.Cut(strings.TrimSpace(s), ".")
	if whole == "" {
		return Money{}, errs.NewValueIsInvalidError("money amount is empty")
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	if units < 0 || strings.HasPrefix(whole, "-") {
		return Money{}, ErrMoneyIsNegative
	}

	var cents int64
	if found {
		if len(frac) == 0 || len(frac) > 2 {
			return Money{}, errs.NewValueIsInvalidError(
				fmt.Sprintf("money amount %q must have one or two fractional digits", s),
			)
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return Money{cents: units*100 + cents}, nil
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by a non-negative item quantity.
func (m Money) MulQuantity(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "12.34".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
