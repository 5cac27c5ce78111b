package prime

import (
	"strconv"
	"strings"
)

// Times joins factors.
const Times = "×"

var superscripts = [10]string{
	"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹",
}

// Superscript returns count written with superscript digits.
func Superscript(count uint64) string {
	var sb strings.Builder

	for _, c := range strconv.FormatUint(count, 10) {
		sb.WriteString(superscripts[c-'0'])
	}

	return sb.String()
}

// FormatFactors writes an ascending factor list with repeated factors
// collapsed into superscript multiplicities, e.g. [2 2 3] is "2²×3".
func FormatFactors(factors []uint64) string {
	out := make([]string, 0, len(factors))

	var last, count uint64

	flush := func() {
		if count == 0 {
			return
		}

		s := strconv.FormatUint(last, 10)
		if count > 1 {
			s += Superscript(count)
		}

		out = append(out, s)
	}

	for _, f := range factors {
		if count > 0 && f == last {
			count++

			continue
		}

		flush()

		last, count = f, 1
	}

	flush()

	return strings.Join(out, Times)
}
