package kernel

import (
	"fmt"

	"restopos/internal/pkg/errs"
)

// bpDenominator converts basis points to a fraction: 1000 bp == 10%.
const bpDenominator = 10_000

// Money is an amount of the operating currency in minor units (cents).
// Keeping amounts integral makes totals, tax, and reconciliation exact;
// there is no floating tolerance anywhere in the core.
//
// The zero value is a legitimate zero amount, so Money carries no
// constructor guard. Negative amounts are representable (differences use
// them transiently) but never persisted; use IsNegative to reject them at
// boundaries.
type Money struct {
	minor int64
}

// NewMoney creates an amount from minor units.
func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{minor: m.minor - other.minor}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{minor: m.minor * int64(quantity)}
}

// TaxAt computes the tax due on m at a rate given in basis points,
// rounded half-up to the nearest minor unit.
func (m Money) TaxAt(rateBp int64) Money {
	if rateBp <= 0 {
		return Zero()
	}
	return Money{minor: (m.minor*rateBp + bpDenominator/2) / bpDenominator}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.minor == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.minor < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.minor > 0
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.minor < other.minor
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.minor > other.minor
}

// IsEqual reports exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// ValidateNonNegative returns an error when the amount is negative. Used by
// constructors of objects that must never hold negative amounts.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is below zero", m.minor))
	}
	return nil
}

// String formats the amount as major.minor, e.g. 1430 -> "14.30".
func (m Money) String() string {
	sign := ""
	minor := m.minor
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
