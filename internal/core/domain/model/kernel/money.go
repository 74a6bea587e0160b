package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in USD.
// It wraps github.com/shopspring/decimal to avoid floating-point rounding
// errors in prices, fees, and order totals.
//
// Money is immutable: arithmetic methods return a new Money value. The zero
// value is a valid zero amount, so Money can be embedded without a guard.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("34.99")
//	fee, _ := kernel.NewMoneyFromString("5.00")
//	total := price.Add(fee) // 39.99
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money value from its decimal string representation.
// Returns an error for malformed input or negative amounts.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// Intended for request payloads; storage and arithmetic stay decimal.
func NewMoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns a Money value of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MultiplyInt returns the Money value multiplied by a whole quantity.
func (m Money) MultiplyInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares two Money values for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Cents returns the amount in whole cents, rounding to 2 decimal places.
// Used when calling the payment capture provider, which bills in cents.
func (m Money) Cents() int64 {
	return m.amount.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "5.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
