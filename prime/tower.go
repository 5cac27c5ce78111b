package prime

import (
	"math"

	"github.com/calebcase/notation/decimal"
)

// MaxInt is the largest integer factored directly (2^53-1).
const MaxInt = 1<<53 - 1

var (
	maxIntDecimal = decimal.New(MaxInt)
	maxIntLog10   = math.Log10(MaxInt)
)

// Regime is the rendering path taken for a magnitude.
type Regime int

// Regimes in order of evaluation.
const (
	Zero Regime = iota
	One
	Direct
	Tower2
	Tower3
)

func (r Regime) String() string {
	switch r {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Direct:
		return "direct"
	case Tower2:
		return "tower2"
	case Tower3:
		return "tower3"
	}

	return "unknown"
}

// Tower is a power tower read bottom up: t[0] ^ (t[1] ^ t[2]).
type Tower []uint64

// Classify returns the regime for value. Non-positive values are Zero.
func Classify(value decimal.Decimal) Regime {
	if value.LessThanOrEqual(maxIntDecimal) {
		switch f := math.Floor(value.Float64()); {
		case f <= 0:
			return Zero
		case f == 1:
			return One
		}

		return Direct
	}

	if outerExponent(value) <= MaxInt {
		return Tower2
	}

	return Tower3
}

// outerExponent is the real exponent e with MaxInt^e == value.
func outerExponent(value decimal.Decimal) float64 {
	return value.Log10() / maxIntLog10
}

// BuildTower returns the two or three levels approximating value, or nil when
// value is small enough to factor directly.
func BuildTower(value decimal.Decimal) Tower {
	if value.LessThanOrEqual(maxIntDecimal) {
		return nil
	}

	exp := outerExponent(value)
	base := math.Pow(MaxInt, exp/math.Ceil(exp))

	if exp <= MaxInt {
		return Tower{round(base), uint64(math.Ceil(exp))}
	}

	exp2 := math.Log10(exp) / maxIntLog10
	exp2Ceil := math.Ceil(exp2)
	exp = math.Pow(MaxInt, exp2/exp2Ceil)
	base = math.Pow(MaxInt, exp/math.Ceil(exp))

	return Tower{round(base), uint64(math.Ceil(exp)), uint64(exp2Ceil)}
}

// round is half up.
func round(x float64) uint64 {
	return uint64(math.Floor(x + 0.5))
}
