// Package engineering provides scientific notation restricted to exponents
// that are multiples of three, e.g. 123456 is 123.46e3.
package engineering

import (
	"github.com/calebcase/notation"
	"github.com/calebcase/notation/decimal"
)

// Notation is the engineering notation.
type Notation struct{}

// Name returns the display label.
func (Notation) Name() string { return "Engineering" }

// Infinite returns the label used for infinite magnitudes.
func (Notation) Infinite() string { return notation.DefaultInfinite }

// FormatDecimal formats value as mantissa e exponent.
func (n Notation) FormatDecimal(value decimal.Decimal, places int) string {
	mantissa, exponent := value.Engineering(places)

	return notation.FormatFixed(mantissa, places) + "e" + notation.FormatExponent(n, exponent)
}

// FormatUnder1000 formats value with fixed places.
func (Notation) FormatUnder1000(value float64, places int) string {
	return notation.FormatFixed(value, places)
}
