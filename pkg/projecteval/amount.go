package projecteval

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Amount wraps decimal.Decimal for monetary values.
// JSON marshaling outputs a plain number with the decimal's full precision,
// while internal arithmetic uses precise decimal operations.
type Amount struct {
	decimal.Decimal
}

// MarshalJSON outputs as a JSON number (not a string).
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// Scan implements sql.Scanner for reading stored amounts.
func (a *Amount) Scan(src any) error {
	if src == nil {
		a.Decimal = decimal.Zero
		return nil
	}
	switch v := src.(type) {
	case float64:
		a.Decimal = decimal.NewFromFloat(v)
		return nil
	case int64:
		a.Decimal = decimal.NewFromInt(v)
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		a.Decimal = d
		return nil
	}
	return a.Decimal.Scan(src)
}

// Value implements driver.Valuer, storing the exact decimal string.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.String(), nil
}

// NewAmount creates an Amount from a float64.
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// NewAmountFromInt creates an Amount from an int64.
func NewAmountFromInt(i int64) Amount {
	return Amount{decimal.NewFromInt(i)}
}

// amt creates an Amount from an exact decimal literal. Panics on malformed
// input; use only with constant strings.
func amt(s string) Amount {
	return Amount{decimal.RequireFromString(s)}
}

// roundTo rounds half away from zero at the given number of decimal places.
// Financial statements here round ties away from zero, so decimal.Round is
// the only rounding primitive used.
func roundTo(d decimal.Decimal, places int32) Amount {
	return Amount{d.Round(places)}
}

// round2 applies the fixed-point rule used after every stored computation.
func round2(d decimal.Decimal) Amount {
	return roundTo(d, 2)
}

func amountPtr(v Amount) *Amount {
	return &v
}
