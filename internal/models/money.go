package models

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCurrency is assumed wherever the stored documents carry bare
// monetary amounts without a currency code.
const DefaultCurrency = "USD"

// ErrCurrencyMismatch is returned when two Money values with different
// currencies are combined or compared. No conversion is attempted.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is an immutable monetary amount with a currency code.
type Money struct {
	Amount   float64
	Currency string
}

// NewMoney creates a Money value. An empty currency falls back to
// DefaultCurrency; the code is always stored uppercase.
func NewMoney(amount float64, currency string) Money {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return NewMoney(0, currency)
}

// Add returns the sum of two same-currency amounts.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot add %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub returns the difference of two same-currency amounts.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot subtract %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Mul scales the amount by a factor; the currency is unchanged.
func (m Money) Mul(factor float64) Money {
	return Money{Amount: m.Amount * factor, Currency: m.Currency}
}

// Cmp compares two same-currency amounts, returning -1, 0 or 1.
func (m Money) Cmp(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, fmt.Errorf("%w: cannot compare %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	switch {
	case m.Amount < other.Amount:
		return -1, nil
	case m.Amount > other.Amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether amount and currency both match.
func (m Money) Equal(other Money) bool {
	return m.Amount == other.Amount && m.Currency == other.Currency
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
}
