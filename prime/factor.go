package prime

import "math"

// FactorBound is the largest trial divisor.
const FactorBound = 10000

// Factorize returns the prime factors of n in ascending order with
// multiplicity. Trial division stops at min(FactorBound, sqrt(n)) and any
// remainder is returned as the last factor. Factorize returns nil for n < 2.
func Factorize(n uint64) (factors []uint64) {
	if n < 2 {
		return nil
	}

	for _, k := range []uint64{2, 3} {
		for ; n%k == 0; n /= k {
			factors = append(factors, k)
		}
	}

	limit := uint64(math.Sqrt(float64(n)))
	if limit > FactorBound {
		limit = FactorBound
	}

	// Every prime above 3 is 6k±1.
	for a, step := uint64(5), uint64(2); a <= limit && a < n; a, step = a+step, 6-step {
		for ; n%a == 0; n /= a {
			factors = append(factors, a)
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}
