package lendbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in the ledger's single currency.
// It keeps the exact decimal value; rounding to cents only happens where
// the contract requires it (validation and display).
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from any of the usual numeric types.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// Simple wrappers around decimal.Decimal.

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }
func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Abs() Amount                      { return Amount{value: a.value.Abs()} }

// Decimal returns the underlying exact decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// RoundCents rounds the value to the nearest cent, ties away from zero.
func (a Amount) RoundCents() Amount { return Amount{value: a.value.Round(2)} }

// String returns the plain two-digit decimal representation, e.g. "1000.00".
func (a Amount) String() string { return a.value.StringFixed(2) }

// Format renders the amount with the currency's symbol and separators,
// e.g. "$1,000.00" for USD. Unknown currency codes fall back to USD.
func (a Amount) Format(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	// the formatter works on the minor unit, so shift by the currency fraction.
	shifted := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.Round(0).IntPart())
}

// SignedFormat is like Format but always carries a sign, and renders zero as "-".
func (a Amount) SignedFormat(code string) string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.Format(code)
	}
	return a.Format(code)
}

// MarshalJSON persists the amount as a plain JSON number rounded to cents.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.Round(2).String()), nil
}

// UnmarshalJSON reads the amount from a plain JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = d
	return nil
}
