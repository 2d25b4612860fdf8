// Package money holds the currency arithmetic used by quotes and invoices.
// All amounts are shopspring decimals; float64 never touches money.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid_amount")
	ErrNegativeAmount = errors.New("negative_amount")
)

// Parse reads a decimal amount, rejecting malformed and negative values.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	return d, nil
}

// MustParse is for constants and seeds known to be valid.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Line computes unit price x quantity exactly.
func Line(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// ApplyRate multiplies an amount by a rate and rounds to cents.
// Rounding rule: half-up (half away from zero; amounts are non-negative).
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

// Sum adds amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Format renders an amount for display, e.g. "$160.00".
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
