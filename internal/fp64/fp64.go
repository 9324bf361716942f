// Package fp64 provides exact bit-level access to the fields of an
// IEEE 754 double-precision value: sign, unbiased exponent and fraction.
// All operations are pure bit reinterpretations, no rounding happens anywhere.
package fp64

import "math"

const (
	// FracBits is the number of fraction bits.
	FracBits = 52
	// SignShift is the position of the sign bit.
	SignShift = 63
	// ExpMask masks the biased exponent after shifting.
	ExpMask = 0x7ff
	// Bias is the exponent bias.
	Bias = 1023
	// MaxExponent is the largest unbiased exponent of a finite normal value.
	MaxExponent = ExpMask - Bias - 1
	// MaxPrec is the minimum exponent gap at which the smaller addend
	// no longer contributes to a sum.
	MaxPrec = 55

	fracMask = 1<<FracBits - 1
)

// BiasedExponent returns the exponent field as stored.
func BiasedExponent(x float64) uint64 {
	return math.Float64bits(x) >> FracBits & ExpMask
}

// Exponent returns the unbiased exponent.
func Exponent(x float64) int64 {
	return int64(BiasedExponent(x)) - Bias
}

// Sign returns the sign bit, 0 or 1.
func Sign(x float64) uint64 {
	return math.Float64bits(x) >> SignShift & 1
}

// Fraction returns the fraction bits.
func Fraction(x float64) uint64 {
	return math.Float64bits(x) & fracMask
}

// ExponentBelow reports whether an unbiased exponent is too small to be
// represented as a normal value.
func ExponentBelow(exp int64) bool {
	return exp <= -Bias
}

// ExponentAbove reports whether an unbiased exponent is too large to be
// represented as a finite value.
func ExponentAbove(exp int64) bool {
	return exp >= ExpMask-Bias
}

// Assemble builds a value from a sign bit, an unbiased exponent and fraction bits.
func Assemble(sign uint64, exp int64, frac uint64) float64 {
	bx := frac
	bx += uint64(exp+Bias) << FracBits
	bx += sign << SignShift
	return math.Float64frombits(bx)
}

// ReplaceExponent returns x with only its exponent field set to exp,
// sign and fraction untouched.
func ReplaceExponent(x float64, exp int64) float64 {
	bx := math.Float64bits(x) &^ (ExpMask << FracBits)
	bx += uint64(exp+Bias) << FracBits
	return math.Float64frombits(bx)
}

// ShiftExponent adds shift to the exponent of x.
// The only risk assumed is underflow, which yields zero.
func ShiftExponent(x float64, shift int64) float64 {
	nexp := Exponent(x) + shift
	if ExponentBelow(nexp) {
		return 0
	}
	return ReplaceExponent(x, nexp)
}

// ZeroExponent returns x with its exponent field set to the bias,
// i.e. an unbiased exponent of zero.
func ZeroExponent(x float64) float64 {
	return ReplaceExponent(x, 0)
}

// Inf returns an infinity with the given sign bit.
func Inf(sign uint64) float64 {
	return Assemble(sign, ExpMask-Bias, 0)
}

// Power2 returns 2^p exactly.
// Underflow (without falling into subnormals) yields zero, overflow is
// the caller's concern.
func Power2(p int64) float64 {
	if ExponentBelow(p) {
		return 0
	}
	return Assemble(0, p, 0)
}
