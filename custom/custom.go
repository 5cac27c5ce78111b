// Package custom provides notations built from a caller supplied set of
// digits or glyphs.
//
// Base notations write the magnitude positionally in the base given by the
// number of digits, with the exponent in the same digits:
//
//	Binary: 1500 = 1.01e1010
//
// Glyph notations write the engineering mantissa followed by the thousands
// exponent in bijective base N over the glyphs:
//
//	Cancer: 1e3 = 1.00😠, 1e78 = 1.00⚡, 1e81 = 1.00😠😠
package custom

import (
	"math"
	"strings"

	"github.com/calebcase/notation"
	"github.com/calebcase/notation/decimal"
)

// Base is a positional notation over custom digits.
type Base struct {
	name   string
	digits []string
}

// NewBase returns a base notation with one digit per rune of digits.
func NewBase(name, digits string) Base {
	b := Base{name: name}
	for _, r := range digits {
		b.digits = append(b.digits, string(r))
	}

	return b
}

// Binary returns the base 2 notation.
func Binary() Base {
	return NewBase("Binary", "01")
}

// Name returns the display label.
func (b Base) Name() string { return b.name }

// Infinite returns the label used for infinite magnitudes.
func (Base) Infinite() string { return notation.DefaultInfinite }

// FormatDecimal formats value as one integral digit, places fraction digits
// and the exponent, all in base digits. Fraction digits are truncated.
func (b Base) FormatDecimal(value decimal.Decimal, places int) string {
	radix := float64(len(b.digits))

	l := value.Log10() / math.Log10(radix)
	e := math.Floor(l)
	m := math.Pow(radix, l-e)

	var sb strings.Builder

	lead := math.Min(math.Floor(m), radix-1)
	sb.WriteString(b.digits[int(lead)])

	if places > 0 {
		sb.WriteString(".")
		b.writeFraction(&sb, m-lead, places)
	}

	sb.WriteString("e")
	sb.WriteString(b.integer(e))

	return sb.String()
}

// FormatUnder1000 formats value in base digits with places fraction digits.
func (b Base) FormatUnder1000(value float64, places int) string {
	whole := math.Floor(value)

	var sb strings.Builder

	sb.WriteString(b.integer(whole))

	if places > 0 {
		sb.WriteString(".")
		b.writeFraction(&sb, value-whole, places)
	}

	return sb.String()
}

func (b Base) writeFraction(sb *strings.Builder, frac float64, places int) {
	radix := float64(len(b.digits))

	for i := 0; i < places; i++ {
		frac *= radix
		d := math.Min(math.Floor(frac), radix-1)
		sb.WriteString(b.digits[int(d)])
		frac -= d
	}
}

// integer writes a non-negative integral value most significant digit first.
func (b Base) integer(v float64) string {
	if v < 1 {
		return b.digits[0]
	}

	radix := float64(len(b.digits))

	var out []string
	for ; v >= 1; v = math.Floor(v / radix) {
		out = append(out, b.digits[int(math.Mod(v, radix))])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return strings.Join(out, "")
}

// Glyphs is a suffix notation over custom glyphs.
type Glyphs struct {
	name   string
	glyphs []string
}

// NewGlyphs returns a glyph notation.
func NewGlyphs(name string, glyphs []string) Glyphs {
	return Glyphs{name: name, glyphs: glyphs}
}

// CancerGlyphs are the glyphs of the Cancer notation.
var CancerGlyphs = []string{
	"😠", "🎂", "🎄", "💀", "🍆", "👪", "🌈", "💯", "🍦", "🎃", "💋", "😂", "🌙",
	"⛔", "🐙", "💩", "❓", "☢", "🙈", "👍", "☂", "✌", "⚠", "❌", "😋", "⚡",
}

// Cancer returns the emoji glyph notation.
func Cancer() Glyphs {
	return NewGlyphs("Cancer", CancerGlyphs)
}

// Name returns the display label.
func (g Glyphs) Name() string { return g.name }

// Infinite returns the label used for infinite magnitudes.
func (Glyphs) Infinite() string { return notation.DefaultInfinite }

// FormatDecimal formats value as the engineering mantissa followed by the
// glyph encoded thousands exponent.
func (g Glyphs) FormatDecimal(value decimal.Decimal, places int) string {
	mantissa, exponent := value.Engineering(places)

	return notation.FormatFixed(mantissa, places) + g.suffix(math.Floor(exponent/3))
}

// FormatUnder1000 formats value with fixed places.
func (Glyphs) FormatUnder1000(value float64, places int) string {
	return notation.FormatFixed(value, places)
}

// suffix writes n in bijective base len(glyphs).
func (g Glyphs) suffix(n float64) string {
	radix := float64(len(g.glyphs))

	var out []string
	for n > 0 {
		n--
		out = append(out, g.glyphs[int(math.Mod(n, radix))])
		n = math.Floor(n / radix)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return strings.Join(out, "")
}
