package prime

import (
	"math"
	"strings"

	"github.com/calebcase/notation/decimal"
)

// Power separates tower levels.
const Power = "^"

// Notation is the prime factorization notation. The zero value is ready to
// use and safe for concurrent use.
type Notation struct{}

// Name returns the display label.
func (Notation) Name() string { return "Prime" }

// Infinite returns the label used for infinite magnitudes.
func (Notation) Infinite() string { return "Primefinity?" }

// FormatDecimal formats value. Places is ignored.
func (n Notation) FormatDecimal(value decimal.Decimal, places int) string {
	return n.Format(value)
}

// FormatUnder1000 formats value. Places is ignored.
func (n Notation) FormatUnder1000(value float64, places int) string {
	return n.Format(decimal.New(value))
}

// Format renders value as a factor product or a power tower.
func (n Notation) Format(value decimal.Decimal) string {
	if value.IsInf() {
		return n.Infinite()
	}

	switch Classify(value) {
	case Zero:
		return "0"
	case One:
		return "1"
	case Direct:
		return FormatFactors(Factorize(uint64(math.Floor(value.Float64()))))
	}

	return FormatTower(BuildTower(value))
}

// levelRule says how one tower level is rendered.
type levelRule struct {
	// parenthesize wraps the level in parentheses.
	parenthesize bool

	// superscript renders the level as a superscript appended to the level
	// below instead of joining it with Power.
	superscript bool
}

// towerRules derives the rendering rule of each level from the level
// factorizations. Every factorization must be non-empty.
func towerRules(factors [][]uint64) []levelRule {
	last := len(factors) - 1
	superscriptLast := len(factors[last]) == 1

	rules := make([]levelRule, len(factors))
	for i, f := range factors {
		mixed := f[0] != f[len(f)-1]

		// A product below an appended superscript would read as though
		// only its last factor were raised.
		product := i == last-1 && len(f) > 1 && superscriptLast

		rules[i] = levelRule{
			parenthesize: mixed || product,
			superscript:  i == last && superscriptLast,
		}
	}

	return rules
}

// FormatTower factorizes each level of t and joins them into a single
// expression.
func FormatTower(t Tower) string {
	if len(t) == 0 {
		return ""
	}

	factors := make([][]uint64, len(t))
	for i, level := range t {
		factors[i] = Factorize(level)
		if len(factors[i]) == 0 {
			factors[i] = []uint64{level}
		}
	}

	rules := towerRules(factors)

	out := make([]string, 0, len(t))
	for i, f := range factors {
		var s string
		if rules[i].superscript {
			s = Superscript(f[0])
		} else {
			s = FormatFactors(f)
		}

		if rules[i].parenthesize {
			s = "(" + s + ")"
		}

		if rules[i].superscript && len(out) > 0 {
			out[len(out)-1] += s

			continue
		}

		out = append(out, s)
	}

	return strings.Join(out, Power)
}
