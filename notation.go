// Package notation renders magnitudes, including values far beyond float64
// range, as short strings in alternative notations.
//
// Each notation implements Notation. Format routes a magnitude to the
// notation entry point that matches its size and sign:
//
//	| Magnitude      | Result                           |
//	|----------------|----------------------------------|
//	| ±Inf           | [-] Infinite()                   |
//	| negative       | "-" + Format(-value)             |
//	| less than 1000 | FormatUnder1000(value, places)   |
//	| otherwise      | FormatDecimal(value, places)     |
//	|----------------|----------------------------------|
//
// The notations are provided by the prime, engineering, greek and custom
// packages.
package notation

import (
	"strconv"

	"github.com/calebcase/notation/decimal"
)

// DefaultInfinite is the infinite label of notations without their own.
const DefaultInfinite = "Infinite"

// exponentPlainMax is the smallest exponent formatted by the notation
// itself rather than printed as an integer.
const exponentPlainMax = 100000

var thousand = decimal.New(1000)

// Notation is implemented by every notation.
type Notation interface {
	// Name returns the display label.
	Name() string

	// Infinite returns the label for infinite magnitudes.
	Infinite() string

	// FormatDecimal formats a non-negative magnitude >= 1000.
	FormatDecimal(value decimal.Decimal, places int) string

	// FormatUnder1000 formats a non-negative magnitude < 1000.
	FormatUnder1000(value float64, places int) string
}

// Format renders value with n.
func Format(n Notation, value decimal.Decimal, places, placesUnder1000 int) string {
	switch {
	case value.IsInf() && value.Sign() < 0:
		return "-" + n.Infinite()
	case value.IsInf():
		return n.Infinite()
	case value.Sign() < 0:
		return "-" + Format(n, value.Neg(), places, placesUnder1000)
	case value.Cmp(thousand) < 0:
		return n.FormatUnder1000(value.Float64(), placesUnder1000)
	}

	return n.FormatDecimal(value, places)
}

// FormatExponent renders an exponent. Small exponents are plain integers,
// large ones are formatted by n with two places.
func FormatExponent(n Notation, exponent float64) string {
	if exponent > -exponentPlainMax && exponent < exponentPlainMax {
		return strconv.FormatFloat(exponent, 'f', 0, 64)
	}

	return Format(n, decimal.New(exponent), 2, 2)
}

// FormatFixed renders value with exactly places digits after the decimal
// point.
func FormatFixed(value float64, places int) string {
	return strconv.FormatFloat(value, 'f', places, 64)
}
