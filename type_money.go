package bagholder

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
//
// The engine never converts between currencies; the currency code exists so
// reports format amounts correctly.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from any numeric type and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD builds a Money in US dollars, the statement default.
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, money.USD)
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency even for "".
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool      { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                 { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                 { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money       { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money       { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns an approximate float64 value, for display-only math.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Decimal returns the exact major-unit value, for storage.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}

// UnmarshalJSON accepts the object form {"currency":..,"amount":..} and, for
// hand-edited files, a bare number (currency left weak).
func (m *Money) UnmarshalJSON(b []byte) error {
	var obj struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		m.value, m.cur = obj.Amount, obj.Currency
		return nil
	}
	var value decimal.Decimal
	if err := json.Unmarshal(b, &value); err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(b), err)
	}
	m.value, m.cur = value, ""
	return nil
}
