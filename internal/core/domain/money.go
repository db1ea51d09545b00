package domain

import (
	"fmt"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// minorUnitScale is the number of decimal places supported by the ledger currency.
const minorUnitScale = 2

// Money is a fixed-precision monetary amount. It is always non-negative and
// never carries more than two decimal places, so repeated arithmetic stays exact.
type Money struct {
	value decimal.Decimal
}

// NewMoney validates and wraps a decimal amount.
// Negative values and values finer than the currency's minor unit are rejected.
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative, got %s", apperrors.ErrValidation, value.String())
	}
	if value.Exponent() < -minorUnitScale && !value.Equal(value.Round(minorUnitScale)) {
		return Money{}, fmt.Errorf("%w: amount %s exceeds %d decimal places", apperrors.ErrValidation, value.String(), minorUnitScale)
	}
	return Money{value: value}, nil
}

// NewPositiveMoney is NewMoney with a strict > 0 requirement, as required
// for transaction amounts.
func NewPositiveMoney(value decimal.Decimal) (Money, error) {
	m, err := NewMoney(value)
	if err != nil {
		return Money{}, err
	}
	if m.value.IsZero() {
		return Money{}, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return m, nil
}

// MustMoney wraps a decimal known to be valid. It panics on invalid input and
// is intended for constants and tests only.
func MustMoney(value decimal.Decimal) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Sub returns m - other. The result may not be constructible via NewMoney
// when other exceeds m; callers needing the invariant should re-validate.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.value.Sub(other.value))
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

// Equal reports whether two amounts are exactly equal.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// String renders the amount at minor-unit precision.
func (m Money) String() string {
	return m.value.StringFixed(minorUnitScale)
}
