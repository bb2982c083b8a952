package kernel

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed indicates that a Price was not created through one
// of the constructor functions.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice, PriceFromString, or PriceFromDecimal")

// Price is a value object representing a money amount in the shop's currency.
// It wraps decimal arithmetic so that unit prices, line totals, and order
// totals never accumulate floating-point drift.
//
// A valid Price is strictly positive: the domain has no free food and no
// refunds flowing through this type. The zero value is invalid and fails
// Validate.
type Price struct {
	amount decimal.Decimal

	isConstructed bool
}

// NewPrice creates a Price from a whole number of currency units.
// Returns an error if amount is not positive.
func NewPrice(amount int64) (Price, error) {
	return PriceFromDecimal(decimal.NewFromInt(amount))
}

// PriceFromString parses a Price from its decimal string representation,
// e.g. "10000" or "249.50". Used at transport boundaries.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return PriceFromDecimal(amount)
}

// PriceFromDecimal creates a Price from a decimal amount.
// Returns an error if the amount is not positive.
func PriceFromDecimal(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	return Price{amount: amount, isConstructed: true}, nil
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount), isConstructed: true}
}

// MulQuantity returns the price multiplied by an item quantity.
// Used to derive a line total from a fresh unit price.
func (p Price) MulQuantity(quantity int) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String returns the decimal string representation of the amount.
func (p Price) String() string {
	return p.amount.String()
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Validate checks that the Price was created through a constructor.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
