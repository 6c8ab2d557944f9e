package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in a currency's minor units (cents for USD).
// Keeping amounts integral makes the sum and conservation invariants exact
// instead of tolerance-based.
type Money int64

// Currency is an ISO 4217 currency code (e.g. "USD", "JPY", "KWD").
type Currency string

// Common errors
var (
	ErrInvalidAmount   = errors.New("amount must be a valid non-negative decimal")
	ErrTooManyDecimals = errors.New("amount has more decimal places than the currency allows")
	ErrInvalidCurrency = errors.New("currency code is required")
)

// Tolerance is the reconciliation tolerance in minor units. It corresponds to
// the 0.01 major-unit tolerance for two-decimal currencies.
const Tolerance Money = 1

// zeroDecimal lists currencies with no minor unit.
var zeroDecimal = map[Currency]bool{
	"JPY": true, "KRW": true, "VND": true, "CLP": true,
	"ISK": true, "PYG": true, "UGX": true, "XAF": true, "XOF": true,
}

// threeDecimal lists currencies with a thousandth minor unit.
var threeDecimal = map[Currency]bool{
	"BHD": true, "IQD": true, "JOD": true, "KWD": true, "OMR": true, "TND": true,
}

// Exponent returns the number of decimal digits in the currency's minor unit.
func (c Currency) Exponent() int32 {
	switch {
	case zeroDecimal[c]:
		return 0
	case threeDecimal[c]:
		return 3
	default:
		return 2
	}
}

// ParseAmount converts a decimal string like "75.50" into minor units of the
// given currency. Negative amounts and excess precision are rejected.
func ParseAmount(s string, currency Currency) (Money, error) {
	if currency == "" {
		return 0, ErrInvalidCurrency
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}

	exp := currency.Exponent()
	scaled := d.Shift(exp)
	if !scaled.IsInteger() {
		return 0, ErrTooManyDecimals
	}

	return Money(scaled.IntPart()), nil
}

// Decimal returns the amount as a decimal in major units.
func (m Money) Decimal(currency Currency) decimal.Decimal {
	return decimal.New(int64(m), -currency.Exponent())
}

// Format renders the amount in major units with the currency's full precision,
// e.g. Money(7550).Format("USD") == "75.50".
func (m Money) Format(currency Currency) string {
	return m.Decimal(currency).StringFixed(currency.Exponent())
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// String renders the raw minor-unit value; useful in errors and logs where the
// currency is not at hand.
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
