// Package core defines the domain model of the ledger: monetary amounts,
// calendar dates, the entity types and the persisted document shape.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount. It preserves whatever precision it
// was created with; only display formatting rounds to two fractional digits.
// The zero value is zero money.
type Money struct {
	dec decimal.Decimal
}

// ParseMoney parses a decimal string into Money. Both signs are accepted;
// callers that need positivity check it with Validate or IsPositive.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{dec: d}, nil
}

// MustMoney is like ParseMoney but panics on error. Test helper.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// MoneyFromInt returns Money worth the given number of whole currency units.
func MoneyFromInt(n int64) Money {
	return Money{dec: decimal.NewFromInt(n)}
}

// Validate reports whether the amount is usable as a transaction amount.
func (m Money) Validate() error {
	if !m.dec.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns m + o.
func (m Money) Add(o Money) Money { return Money{dec: m.dec.Add(o.dec)} }

// Sub returns m - o.
func (m Money) Sub(o Money) Money { return Money{dec: m.dec.Sub(o.dec)} }

// Neg returns -m.
func (m Money) Neg() Money { return Money{dec: m.dec.Neg()} }

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m.dec.IsPositive() }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m.dec.IsNegative() }

// IsZero reports whether m == 0.
func (m Money) IsZero() bool { return m.dec.IsZero() }

// Equal reports whether m and o represent the same amount.
func (m Money) Equal(o Money) bool { return m.dec.Equal(o.dec) }

// GreaterThanOrEqual reports whether m >= o.
func (m Money) GreaterThanOrEqual(o Money) bool {
	return m.dec.GreaterThanOrEqual(o.dec)
}

// Float64 returns the amount as a float64 for ratio display (goal progress).
func (m Money) Float64() float64 {
	f, _ := m.dec.Float64()
	return f
}

// String returns the exact decimal representation.
func (m Money) String() string { return m.dec.String() }

// Display formats the amount as currency, rounded to two fractional digits.
func (m Money) Display() string {
	if m.dec.IsNegative() {
		return "-$" + m.dec.Neg().StringFixed(2)
	}
	return "$" + m.dec.StringFixed(2)
}

// MarshalJSON encodes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.dec.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.dec.UnmarshalJSON(data)
}
