package decimal

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	type TC struct {
		name string
		f    float64
		m    float64
		e    float64
	}

	tcs := []TC{
		{name: "zero", f: 0, m: 0, e: 0},
		{name: "one", f: 1, m: 1, e: 0},
		{name: "twelve", f: 12, m: 1.2, e: 1},
		{name: "million", f: 1e6, m: 1, e: 6},
		{name: "negative", f: -2500, m: -2.5, e: 3},
		{name: "fraction", f: 0.05, m: 5, e: -2},
		{name: "max safe", f: 1<<53 - 1, m: 9.007199254740991, e: 15},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := New(tc.f)
			require.Equal(t, tc.m, d.Mantissa(), spew.Sdump(d))
			require.Equal(t, tc.e, d.Exponent(), spew.Sdump(d))
			require.Equal(t, tc.f, d.Float64())
		})
	}
}

func TestRoundTripIntegers(t *testing.T) {
	for _, n := range []float64{
		2, 7, 12, 997, 1000, 123456789012, 999999999999999, 1<<53 - 1,
	} {
		require.Equal(t, n, New(n).Float64(), "%v", n)
	}

	for n := 1.0; n < 100000; n++ {
		if New(n).Float64() != n {
			t.Fatalf("round trip failed for %v: %s", n, spew.Sdump(New(n)))
		}
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		input string
		m     float64
		e     float64
		err   bool
	}

	tcs := []TC{
		{input: "0", m: 0, e: 0},
		{input: "12", m: 1.2, e: 1},
		{input: "  1e20000 ", m: 1, e: 20000},
		{input: "-3.25e+1000000000000000000000", m: -3.25, e: 1e21},
		{input: "123456789012345678901234567890", m: 1.2345678901234567, e: 29},
		{input: "0.00125", m: 1.25, e: -3},
		{input: "25E-1", m: 2.5, e: 0},
		{input: "", err: true},
		{input: "abc", err: true},
		{input: "1e", err: true},
		{input: "1e1.5", err: true},
		{input: "nan", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			d, err := Parse(tc.input)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.m, d.Mantissa(), spew.Sdump(d))
			require.Equal(t, tc.e, d.Exponent(), spew.Sdump(d))
		})
	}

	t.Run("infinity", func(t *testing.T) {
		d, err := Parse("Infinity")
		require.NoError(t, err)
		require.True(t, d.IsInf())
		require.Equal(t, 1, d.Sign())

		d, err = Parse("-inf")
		require.NoError(t, err)
		require.True(t, d.IsInf())
		require.Equal(t, -1, d.Sign())
	})
}

func TestFromAPD(t *testing.T) {
	a, _, err := apd.NewFromString("-4.5E+30")
	require.NoError(t, err)

	d, err := FromAPD(a)
	require.NoError(t, err)
	require.Equal(t, -4.5, d.Mantissa())
	require.Equal(t, 30.0, d.Exponent())

	_, err = FromAPD(&apd.Decimal{Form: apd.NaN})
	require.Error(t, err)
}

func TestCmp(t *testing.T) {
	type TC struct {
		a, b Decimal
		cmp  int
	}

	tcs := []TC{
		{a: New(1), b: New(2), cmp: -1},
		{a: New(2), b: New(1), cmp: 1},
		{a: New(5), b: New(5), cmp: 0},
		{a: Zero(), b: Zero(), cmp: 0},
		{a: New(-5), b: New(1), cmp: -1},
		{a: New(-5), b: New(-50), cmp: 1},
		{a: MustParse("1e20000"), b: New(1<<53 - 1), cmp: 1},
		{a: Inf(1), b: MustParse("1e1000000"), cmp: 1},
		{a: Inf(-1), b: New(-1), cmp: -1},
		{a: Inf(1), b: Inf(1), cmp: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s_%s", i, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.cmp, tc.a.Cmp(tc.b))
			require.Equal(t, -tc.cmp, tc.b.Cmp(tc.a))
			require.Equal(t, tc.cmp <= 0, tc.a.LessThanOrEqual(tc.b))
		})
	}
}

func TestLog10Pow(t *testing.T) {
	require.Equal(t, 20000.0, MustParse("1e20000").Log10())
	require.InDelta(t, 3.0, New(1000).Log10(), 1e-12)
	require.True(t, math.IsInf(Zero().Log10(), -1))

	p := New(10).Pow(20000)
	require.InDelta(t, 20000.0, p.Exponent(), 1e-9)
	require.InDelta(t, 1.0, p.Mantissa(), 1e-9)

	require.Equal(t, 1.0, New(123).Pow(0).Float64())
	require.InDelta(t, -8.0, New(-2).Pow(3).Float64(), 1e-12)
	require.True(t, math.IsNaN(New(-2).Pow(0.5).Mantissa()))
	require.True(t, Zero().Pow(2).IsZero())
}

func TestFloorMod(t *testing.T) {
	require.Equal(t, 12.0, New(12.9).Floor().Float64())
	require.True(t, New(0.5).Floor().IsZero())
	require.Equal(t, -1.0, New(-0.5).Floor().Float64())

	big := MustParse("1.5e40")
	require.Equal(t, big, big.Floor())

	require.Equal(t, 2.0, New(17).Mod(3).Float64())
	require.True(t, big.Mod(3).IsZero())
	require.True(t, math.IsNaN(New(1).Mod(0).Mantissa()))
}

func TestFloat64Range(t *testing.T) {
	require.True(t, math.IsInf(MustParse("1e400").Float64(), 1))
	require.True(t, math.IsInf(MustParse("-1e20000").Float64(), -1))
	require.Equal(t, 0.0, MustParse("1e-500").Float64())
	require.Equal(t, 1.5e300, MustParse("1.5e300").Float64())
}

func TestToFixed(t *testing.T) {
	type TC struct {
		d      Decimal
		places int
		out    string
	}

	tcs := []TC{
		{d: New(12.345), places: 0, out: "12"},
		{d: New(1.5), places: 2, out: "1.50"},
		{d: MustParse("1.25e22"), places: 0, out: "12500000000000000000000"},
		{d: MustParse("1.25e22"), places: 2, out: "12500000000000000000000.00"},
		{d: MustParse("-1.25e22"), places: 0, out: "-12500000000000000000000"},
		{d: MustParse("1e2000000"), places: 0, out: "1e+2000000"},
		{d: Inf(1), places: 2, out: "Infinity"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.out), func(t *testing.T) {
			require.Equal(t, tc.out, tc.d.ToFixed(tc.places))
		})
	}
}

func TestEngineering(t *testing.T) {
	type TC struct {
		d      Decimal
		places int
		m      float64
		e      float64
	}

	tcs := []TC{
		{d: New(123456), places: 2, m: 123.46, e: 3},
		{d: New(1000), places: 2, m: 1, e: 3},
		{d: New(999999), places: 2, m: 1, e: 6},
		{d: MustParse("1e20000"), places: 2, m: 100, e: 19998},
		{d: Zero(), places: 2, m: 0, e: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.d), func(t *testing.T) {
			m, e := tc.d.Engineering(tc.places)
			require.InDelta(t, tc.m, m, 1e-9)
			require.Equal(t, tc.e, e)
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "0", Zero().String())
	require.Equal(t, "12", New(12).String())
	require.Equal(t, "0.5", New(0.5).String())
	require.Equal(t, "1.5e+20000", MustParse("1.5e20000").String())
	require.Equal(t, "-Infinity", Inf(-1).String())

	text, err := MustParse("2e100").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2e+100", string(text))

	var d Decimal
	require.NoError(t, d.UnmarshalText(text))
	require.Equal(t, MustParse("2e100"), d)
	require.Error(t, d.UnmarshalText([]byte("bogus")))
}
