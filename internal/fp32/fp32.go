// Package fp32 provides exact bit-level access to the fields of an
// IEEE 754 single-precision value. The algorithms are identical to
// package fp64, only the field widths differ.
package fp32

import "math"

const (
	// FracBits is the number of fraction bits.
	FracBits = 23
	// SignShift is the position of the sign bit.
	SignShift = 31
	// ExpMask masks the biased exponent after shifting.
	ExpMask = 0xff
	// Bias is the exponent bias.
	Bias = 127
	// MaxExponent is the largest unbiased exponent of a finite normal value.
	MaxExponent = ExpMask - Bias - 1
	// MaxPrec is the minimum exponent gap at which the smaller addend
	// no longer contributes to a sum.
	MaxPrec = 26

	fracMask = 1<<FracBits - 1
)

// BiasedExponent returns the exponent field as stored.
func BiasedExponent(x float32) uint32 {
	return math.Float32bits(x) >> FracBits & ExpMask
}

// Exponent returns the unbiased exponent.
func Exponent(x float32) int32 {
	return int32(BiasedExponent(x)) - Bias
}

// Sign returns the sign bit, 0 or 1.
func Sign(x float32) uint32 {
	return math.Float32bits(x) >> SignShift & 1
}

// Fraction returns the fraction bits.
func Fraction(x float32) uint32 {
	return math.Float32bits(x) & fracMask
}

// ExponentBelow reports whether an unbiased exponent is too small to be
// represented as a normal value.
func ExponentBelow(exp int32) bool {
	return exp <= -Bias
}

// ExponentAbove reports whether an unbiased exponent is too large to be
// represented as a finite value.
func ExponentAbove(exp int32) bool {
	return exp >= ExpMask-Bias
}

// Assemble builds a value from a sign bit, an unbiased exponent and fraction bits.
func Assemble(sign uint32, exp int32, frac uint32) float32 {
	bx := frac
	bx += uint32(exp+Bias) << FracBits
	bx += sign << SignShift
	return math.Float32frombits(bx)
}

// ReplaceExponent returns x with only its exponent field set to exp,
// sign and fraction untouched.
func ReplaceExponent(x float32, exp int32) float32 {
	bx := math.Float32bits(x) &^ (ExpMask << FracBits)
	bx += uint32(exp+Bias) << FracBits
	return math.Float32frombits(bx)
}

// ShiftExponent adds shift to the exponent of x.
// The only risk assumed is underflow, which yields zero.
func ShiftExponent(x float32, shift int32) float32 {
	nexp := Exponent(x) + shift
	if ExponentBelow(nexp) {
		return 0
	}
	return ReplaceExponent(x, nexp)
}

// ZeroExponent returns x with its exponent field set to the bias,
// i.e. an unbiased exponent of zero.
func ZeroExponent(x float32) float32 {
	return ReplaceExponent(x, 0)
}

// Inf returns an infinity with the given sign bit.
func Inf(sign uint32) float32 {
	return Assemble(sign, ExpMask-Bias, 0)
}

// Power2 returns 2^p exactly.
// Underflow (without falling into subnormals) yields zero, overflow is
// the caller's concern.
func Power2(p int32) float32 {
	if ExponentBelow(p) {
		return 0
	}
	return Assemble(0, p, 0)
}
