package money

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value in the canonical currency (USD).
// Positive amounts are income, negative amounts are expenses.
//
// It marshals to JSON as a bare number so that persisted and exported
// documents carry numeric amounts, and it accepts both numbers and
// numeric strings when unmarshalling.
type Amount struct {
	dec decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

func New(d decimal.Decimal) Amount {
	return Amount{dec: d}
}

func FromInt(n int64) Amount {
	return Amount{dec: decimal.NewFromInt(n)}
}

// Parse converts a decimal string such as "25.50" or "-12" into an Amount.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}

	return Amount{dec: d}, nil
}

// MustParse is Parse for trusted inputs (seed data, tests). It panics on error.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return a
}

func (a Amount) Decimal() decimal.Decimal { return a.dec }

func (a Amount) Add(b Amount) Amount { return Amount{dec: a.dec.Add(b.dec)} }

func (a Amount) Sub(b Amount) Amount { return Amount{dec: a.dec.Sub(b.dec)} }

func (a Amount) Mul(d decimal.Decimal) Amount { return Amount{dec: a.dec.Mul(d)} }

func (a Amount) Abs() Amount { return Amount{dec: a.dec.Abs()} }

func (a Amount) Neg() Amount { return Amount{dec: a.dec.Neg()} }

func (a Amount) Round(places int32) Amount { return Amount{dec: a.dec.Round(places)} }

func (a Amount) IsNegative() bool { return a.dec.IsNegative() }

func (a Amount) IsPositive() bool { return a.dec.IsPositive() }

func (a Amount) IsZero() bool { return a.dec.IsZero() }

// Cmp returns -1, 0 or 1 comparing a to b.
func (a Amount) Cmp(b Amount) int { return a.dec.Cmp(b.dec) }

func (a Amount) Equal(b Amount) bool { return a.dec.Equal(b.dec) }

// String renders the amount without any formatting, e.g. "-25.5".
func (a Amount) String() string { return a.dec.String() }

// StringFixed renders the amount with a fixed number of decimals.
func (a Amount) StringFixed(places int32) string { return a.dec.StringFixed(places) }

// Float64 returns the closest float64. Display use only.
func (a Amount) Float64() float64 {
	f, _ := a.dec.Float64()
	return f
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.dec.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal amount %s: %w", data, err)
	}

	a.dec = d

	return nil
}
