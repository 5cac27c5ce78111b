package decimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

const (
	// leadingDigits is the number of significant digits kept from parsed
	// mantissas.
	leadingDigits = 17

	// maxFixedExponent bounds the length of ToFixed output. Beyond it the
	// scientific String form is returned.
	maxFixedExponent = 1_000_000
)

// Decimal is a mantissa and base 10 exponent pair.
type Decimal struct {
	m float64
	e float64
}

// Zero returns the zero value.
func Zero() Decimal {
	return Decimal{}
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Decimal {
	return Decimal{m: math.Inf(sign)}
}

// New returns the decimal closest to f.
func New(f float64) Decimal {
	switch {
	case f == 0 || math.IsNaN(f):
		return Decimal{}
	case math.IsInf(f, 0):
		return Decimal{m: f}
	}

	// Splitting the shortest representation keeps integral values exact.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')

	m, _ := strconv.ParseFloat(s[:i], 64)
	e, _ := strconv.Atoi(s[i+1:])

	return Decimal{m: m, e: float64(e)}
}

// FromMantissaExponent returns m * 10^e normalized. A fractional exponent is
// folded into the mantissa.
func FromMantissaExponent(m, e float64) Decimal {
	if frac := e - math.Floor(e); frac != 0 {
		m *= math.Pow(10, frac)
		e = math.Floor(e)
	}

	return normalize(m, e)
}

// fromLog10 returns 10^l.
func fromLog10(l float64) Decimal {
	switch {
	case math.IsInf(l, 1):
		return Inf(1)
	case math.IsInf(l, -1):
		return Zero()
	}

	e := math.Floor(l)

	return normalize(math.Pow(10, l-e), e)
}

func normalize(m, e float64) Decimal {
	switch {
	case m == 0 || math.IsNaN(m):
		return Decimal{}
	case math.IsInf(m, 0):
		return Decimal{m: m}
	}

	shift := math.Floor(math.Log10(math.Abs(m)))
	if shift != 0 {
		m /= math.Pow(10, shift)
		e += shift
	}

	// Rounding in the division above may leave the mantissa one digit off.
	switch a := math.Abs(m); {
	case a >= 10:
		m /= 10
		e++
	case a < 1:
		m *= 10
		e--
	}

	return Decimal{m: m, e: e}
}

// FromAPD converts an arbitrary precision decimal. The coefficient is
// rounded to its leading 17 digits.
func FromAPD(a *apd.Decimal) (d Decimal, err error) {
	defer Error.WrapP(&err)

	switch a.Form {
	case apd.Infinite:
		if a.Negative {
			return Inf(-1), nil
		}

		return Inf(1), nil
	case apd.NaN, apd.NaNSignaling:
		return Decimal{}, Error.New("not a number")
	}

	if a.IsZero() {
		return Decimal{}, nil
	}

	digits := a.Coeff.String()
	lead := digits
	if len(lead) > leadingDigits {
		lead = lead[:leadingDigits]
	}
	if len(lead) > 1 {
		lead = lead[:1] + "." + lead[1:]
	}

	m, err := strconv.ParseFloat(lead, 64)
	if err != nil {
		return Decimal{}, err
	}

	if a.Negative {
		m = -m
	}

	return normalize(m, float64(a.Exponent)+float64(len(digits)-1)), nil
}

// Parse reads a decimal string. See the package documentation for the
// accepted syntax.
func Parse(s string) (d Decimal, err error) {
	defer Error.WrapP(&err)

	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "":
		return Decimal{}, Error.New("empty input")
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(1), nil
	case "-inf", "-infinity":
		return Inf(-1), nil
	}

	mantissa, exponent := s, 0.0

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]

		exponent, err = strconv.ParseFloat(s[i+1:], 64)
		if err != nil {
			return Decimal{}, err
		}

		if math.IsInf(exponent, 0) || exponent != math.Floor(exponent) {
			return Decimal{}, Error.New("invalid exponent: %q", s[i+1:])
		}
	}

	a, _, err := apd.NewFromString(mantissa)
	if err != nil {
		return Decimal{}, err
	}

	if a.Form != apd.Finite {
		return Decimal{}, Error.New("invalid mantissa: %q", mantissa)
	}

	d, err = FromAPD(a)
	if err != nil {
		return Decimal{}, err
	}

	if !d.IsZero() {
		d.e += exponent
	}

	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Mantissa returns the normalized mantissa.
func (d Decimal) Mantissa() float64 { return d.m }

// Exponent returns the base 10 exponent.
func (d Decimal) Exponent() float64 { return d.e }

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	switch {
	case d.m > 0:
		return 1
	case d.m < 0:
		return -1
	}

	return 0
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool { return d.m == 0 }

// IsInf reports whether d is an infinity of either sign.
func (d Decimal) IsInf() bool { return math.IsInf(d.m, 0) }

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d.m = math.Abs(d.m)

	return d
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.m != 0 {
		d.m = -d.m
	}

	return d
}

// Cmp compares d and o and returns -1, 0 or +1.
func (d Decimal) Cmp(o Decimal) int {
	ds, os := d.Sign(), o.Sign()

	switch {
	case ds < os:
		return -1
	case ds > os:
		return 1
	case ds == 0:
		return 0
	}

	c := d.cmpAbs(o)
	if ds < 0 {
		return -c
	}

	return c
}

func (d Decimal) cmpAbs(o Decimal) int {
	di, oi := d.IsInf(), o.IsInf()

	switch {
	case di && oi:
		return 0
	case di:
		return 1
	case oi:
		return -1
	case d.e < o.e:
		return -1
	case d.e > o.e:
		return 1
	}

	dm, om := math.Abs(d.m), math.Abs(o.m)

	switch {
	case dm < om:
		return -1
	case dm > om:
		return 1
	}

	return 0
}

// LessThanOrEqual reports whether d <= o.
func (d Decimal) LessThanOrEqual(o Decimal) bool {
	return d.Cmp(o) <= 0
}

// Log10 returns the base 10 logarithm of d. Zero yields -Inf and negative
// values yield NaN.
func (d Decimal) Log10() float64 {
	switch {
	case d.m == 0:
		return math.Inf(-1)
	case math.IsInf(d.m, 1):
		return math.Inf(1)
	}

	return d.e + math.Log10(d.m)
}

// Pow returns d^p. Negative bases are only defined for integral p.
func (d Decimal) Pow(p float64) Decimal {
	switch {
	case p == 0:
		return New(1)
	case d.m == 0:
		if p < 0 {
			return Inf(1)
		}

		return Decimal{}
	}

	r := fromLog10(d.Abs().Log10() * p)

	if d.m < 0 {
		if p != math.Floor(p) {
			return Decimal{m: math.NaN()}
		}

		if math.Mod(p, 2) != 0 {
			r = r.Neg()
		}
	}

	return r
}

// Floor returns the greatest integral value <= d. Values with 17 or more
// integral digits are already integral at this precision and are returned
// unchanged.
func (d Decimal) Floor() Decimal {
	switch {
	case d.m == 0 || d.IsInf() || d.e >= leadingDigits:
		return d
	case d.e < 0:
		if d.m < 0 {
			return New(-1)
		}

		return Decimal{}
	}

	return New(math.Floor(d.Float64()))
}

// Mod returns the remainder of d / n with the sign of d. Beyond 17 integral
// digits the low order digits are unknown and the remainder is reported as
// zero.
func (d Decimal) Mod(n float64) Decimal {
	if n == 0 || d.IsInf() {
		return Decimal{m: math.NaN()}
	}

	if d.e >= leadingDigits {
		return Decimal{}
	}

	return New(math.Mod(d.Float64(), n))
}

// Float64 returns the nearest float64. Magnitudes beyond the float64 range
// become ±Inf or zero.
func (d Decimal) Float64() float64 {
	switch {
	case d.m == 0 || d.IsInf() || math.IsNaN(d.m):
		return d.m
	case d.e > 400:
		return math.Inf(d.Sign())
	case d.e < -400:
		return 0
	}

	f, _ := strconv.ParseFloat(d.scientific(), 64)

	return f
}

// scientific renders the shortest mantissa with an explicit exponent.
func (d Decimal) scientific() string {
	var sb strings.Builder

	sb.WriteString(strconv.FormatFloat(d.m, 'g', -1, 64))
	sb.WriteString("e")
	if d.e >= 0 {
		sb.WriteString("+")
	}
	sb.WriteString(strconv.FormatFloat(d.e, 'f', 0, 64))

	return sb.String()
}

// ToFixed returns d with exactly places digits after the decimal point.
// Digits past the mantissa precision are zero.
func (d Decimal) ToFixed(places int) string {
	switch {
	case d.IsInf() && d.m > 0:
		return "Infinity"
	case d.IsInf():
		return "-Infinity"
	case d.e < 21:
		return strconv.FormatFloat(d.Float64(), 'f', places, 64)
	case d.e > maxFixedExponent:
		return d.String()
	}

	var sb strings.Builder

	if d.m < 0 {
		sb.WriteString("-")
	}

	digits := strings.Replace(strconv.FormatFloat(math.Abs(d.m), 'f', -1, 64), ".", "", 1)
	sb.WriteString(digits)
	sb.WriteString(strings.Repeat("0", int(d.e)+1-len(digits)))

	if places > 0 {
		sb.WriteString(".")
		sb.WriteString(strings.Repeat("0", places))
	}

	return sb.String()
}

// Engineering returns d as mantissa * 10^exponent where exponent is a
// multiple of three. The mantissa is rounded to places digits and the pair is
// renormalized when rounding reaches 1000.
func (d Decimal) Engineering(places int) (mantissa, exponent float64) {
	if d.m == 0 || d.IsInf() {
		return d.m, 0
	}

	offset := math.Mod(d.e, 3)
	if offset < 0 {
		offset += 3
	}

	scale := math.Pow(10, float64(places))
	mantissa = math.Round(d.m*math.Pow(10, offset)*scale) / scale
	exponent = d.e - offset

	if math.Abs(mantissa) >= 1000 {
		mantissa /= 1000
		exponent += 3
	}

	return mantissa, exponent
}

// String implements fmt.Stringer. Values with fewer than 21 integral digits
// print in positional form, larger values in scientific form.
func (d Decimal) String() string {
	switch {
	case d.IsInf():
		return d.ToFixed(0)
	case d.m == 0:
		return "0"
	case d.e > -7 && d.e < 21:
		return strconv.FormatFloat(d.Float64(), 'f', -1, 64)
	}

	return d.scientific()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
