package engineering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/notation"
	"github.com/calebcase/notation/decimal"
)

func TestFormat(t *testing.T) {
	type TC struct {
		value  decimal.Decimal
		places int
		out    string
	}

	tcs := []TC{
		{value: decimal.New(5), places: 0, out: "5"},
		{value: decimal.New(12.5), places: 2, out: "12.50"},
		{value: decimal.New(1000), places: 2, out: "1.00e3"},
		{value: decimal.New(123456), places: 2, out: "123.46e3"},
		{value: decimal.New(999999), places: 2, out: "1.00e6"},
		{value: decimal.MustParse("1e20000"), places: 2, out: "100.00e19998"},
		{value: decimal.MustParse("1e100002"), places: 2, out: "1.00e100.00e3"},
		{value: decimal.MustParse("-4.5e10"), places: 1, out: "-45.0e9"},
		{value: decimal.Inf(1), places: 2, out: "Infinite"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.out), func(t *testing.T) {
			require.Equal(t, tc.out, notation.Format(Notation{}, tc.value, tc.places, tc.places))
		})
	}
}
