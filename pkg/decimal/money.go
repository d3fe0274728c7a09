package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with decimal precision for reporting.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64. Non-finite inputs become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds to cents using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// String returns the amount with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixedBank(2)
}

// Format renders the amount as currency with thousands separators, e.g. "$1,234.50".
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixedBank(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.IsNegative() && !m.Decimal.RoundBank(2).IsZero() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Round rounds value to the given number of decimal places the way numpy
// does: the scaled binary value is rounded half-to-even, then scaled back,
// so Round(2.675, 2) is 2.67 because 267.5 is not exactly representable.
// Non-finite values round to zero and negative places are treated as zero.
func Round(value float64, places int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if places < 0 {
		places = 0
	}
	scale := math.Pow10(places)
	scaled := value * scale
	if math.IsInf(scaled, 0) {
		return value
	}
	return decimal.NewFromFloat(scaled).RoundBank(0).InexactFloat64() / scale
}

// RoundSlice applies Round to every element and returns a new slice.
func RoundSlice(values []float64, places int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Round(v, places)
	}
	return out
}

// Percent formats a fraction (0.0734) as a percentage string ("7.34%").
func Percent(fraction float64, places int) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		fraction = 0
	}
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixedBank(int32(places)) + "%"
}
