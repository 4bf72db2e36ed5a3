package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when a caller does not specify one.
const DefaultCurrency = "IRR"

// Money is an immutable value object: a non-negative decimal amount tagged
// with an upper-cased 3-letter currency code. Arithmetic never mutates;
// every operation returns a fresh value.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney constructs a Money value. The amount must be non-negative and
// the currency non-blank; the currency is normalized to upper case.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidMoneyAmount, amount.String())
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: strings.ToUpper(currency)}, nil
}

// Zero returns a zero Money in the given currency, defaulting to
// DefaultCurrency when currency is blank.
func Zero(currency string) Money {
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	return Money{amount: decimal.Zero, currency: strings.ToUpper(currency)}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the normalized currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns m + other. Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns m - other. Fails when the currencies differ. A negative
// result is rejected by the Money constructor itself; callers that need a
// friendlier failure (e.g. insufficient balance) must check beforehand.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal implements value semantics: equal amount and equal currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}

func (m Money) ensureSameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
