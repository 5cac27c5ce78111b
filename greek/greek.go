// Package greek provides a notation that writes the thousands exponent in
// Greek letters, e.g. 1e3 is "1.00 α" and 1e150 is "1.00 αα".
package greek

import (
	"math"
	"strings"

	"github.com/calebcase/notation"
	"github.com/calebcase/notation/decimal"
)

// Letters are the base 49 digits of the thousands exponent, zero first.
var Letters = []rune("άαβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ")

// Notation is the Greek letters notation.
type Notation struct{}

// Name returns the display label.
func (Notation) Name() string { return "Greek Letters" }

// Infinite returns the label used for infinite magnitudes.
func (Notation) Infinite() string { return notation.DefaultInfinite }

// FormatDecimal formats value as mantissa followed by the letter encoded
// thousands exponent.
func (Notation) FormatDecimal(value decimal.Decimal, places int) string {
	mantissa := math.Pow(10, math.Mod(value.Log10(), 3))

	return notation.FormatFixed(mantissa, places) + " " + suffix(math.Floor(value.Exponent()/3))
}

// FormatUnder1000 formats value with fixed places.
func (Notation) FormatUnder1000(value float64, places int) string {
	return notation.FormatFixed(value, places)
}

func suffix(exp float64) string {
	base := float64(len(Letters))

	step := 1.0
	for step*base <= exp {
		step *= base
	}

	var sb strings.Builder

	for ; step >= 1; step /= base {
		ordinal := math.Floor(exp / step)
		sb.WriteRune(Letters[int(ordinal)])
		exp -= step * ordinal
	}

	return sb.String()
}
