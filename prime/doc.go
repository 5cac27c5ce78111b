// Package prime provides the prime factorization notation.
//
// Integers up to MaxInt (2^53-1) are written as the product of their prime
// factors with multiplicities as superscripts:
//
//	12      = 2²×3
//	1000000 = 2⁶×5⁶
//	997     = 997
//
// Factorization is trial division bounded by FactorBound. Whatever remains
// after the bounded search is written as a single final factor even when it
// is composite. This keeps formatting fast for every integer up to MaxInt.
//
// # Power Towers
//
// Larger magnitudes are written as a power tower of two or three levels whose
// levels are each factorized:
//
//	base ^ exponent               Tower2
//	base ^ (exponent ^ exponent2) Tower3
//
// The exponent is the smallest integer that keeps the base at or below
// MaxInt. When the exponent itself exceeds MaxInt the same reduction is
// applied once more to produce the third level. Magnitudes that would need a
// fourth level are not supported.
//
// A level whose factorization is a single prime is appended to the level
// below it as a superscript. Levels are parenthesized when they contain more
// than one distinct prime, or when a superscript is appended to a product:
//
//	1e20000  = (2²×11×202074094271851)^(2×3×11×19)
//	1e(1e20) = (2×79×479×119013757771)^(2²×23×467×58271)²
//
// # Regimes
//
// Classify reports which of the rendering paths a magnitude takes:
//
//	| Regime | Condition                    | Output             |
//	|--------|------------------------------|--------------------|
//	| Zero   | floor(value) == 0            | "0"                |
//	| One    | floor(value) == 1            | "1"                |
//	| Direct | value <= MaxInt              | factor product     |
//	| Tower2 | outer exponent <= MaxInt     | base^exponent      |
//	| Tower3 | otherwise                    | base^exponent^exp2 |
//	|--------|------------------------------|--------------------|
//
// Fractions between 0 and 2 collapse through floor to "0" or "1".
package prime
