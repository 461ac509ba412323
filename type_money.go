package cryptodash

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display. The backend owns ledger
// correctness; this type only formats and compares.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// USD returns a Money in US dollars, the dashboard's reporting currency.
func USD(value float64) Money {
	return Money{value: decimal.NewFromFloat(value), cur: money.USD}
}

// ParseUSD parses a user-entered dollar amount such as "60000" or "0.5".
func ParseUSD(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v, cur: money.USD}, nil
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted value, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit leading sign,
// the way gain/loss figures are displayed.
func (m Money) SignedString() string {
	if m.value.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }

// Float64 returns the inexact float value, display only.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

// Mul returns the money multiplied by a unit-less quantity.
func (m Money) Mul(q decimal.Decimal) Money {
	return Money{value: m.value.Mul(q), cur: m.cur}
}
