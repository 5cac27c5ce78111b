// Package decimal provides a base 10 floating point magnitude with an
// exponent range far beyond float64.
//
// The equation for a decimal number is:
//
//	number = mantissa * 10 ^ exponent
//
// Where mantissa is a float64 normalized to 1 <= |mantissa| < 10 and exponent
// is an integral float64. For example:
//
//	1234 = 1.234 * 10^3
//
// Zero is represented with a zero mantissa and exponent. Infinities carry an
// infinite mantissa and a zero exponent.
//
// # Range
//
// The exponent is held in a float64 so magnitudes up to roughly
// 10^(1.8*10^308) are representable. Exponents beyond 2^53 lose integral
// precision, which only matters to notations that read individual exponent
// digits.
//
// # Parsing
//
// Parse accepts decimal strings of arbitrary precision:
//
//	[sign] digits [. digits] [e [sign] digits]
//
// The mantissa part is read with an arbitrary precision decimal and then
// rounded to the leading 17 significant digits. The exponent part is read as
// a float64 so exponents outside int32 range remain representable:
//
//	1e20000
//	-3.25e+1000000000000000000000
//	123456789012345678901234567890
//
// # Conversions
//
// Float64 returns the nearest float64 (±Inf beyond float64 range). Integral
// values up to 2^53 round trip exactly through New and Float64 so that
// callers may floor and factor them.
package decimal
