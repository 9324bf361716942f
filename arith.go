// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import (
	"math"

	"github.com/avdva/efp/internal/fp64"
)

// Neg returns -v. Zero maps to zero.
func (v Value) Neg() Value {
	if v.IsZero() {
		return v
	}
	return Value{fp: -v.fp, exp: v.exp}
}

// Add returns v + other.
// The operand with the smaller high exponent is scaled up to the
// larger's scale with a fused multiply-add. When the exponent gap
// exceeds the mantissa precision the scaled term contributes nothing
// and the sum is the larger operand, which is intended.
func (v Value) Add(other Value) Value {
	var nval Value
	if v.exp > other.exp {
		nval.exp = v.exp
		nval.fp = math.FMA(other.fp, fp64.Power2(other.exp-v.exp), v.fp)
	} else {
		nval.exp = other.exp
		nval.fp = math.FMA(v.fp, fp64.Power2(v.exp-other.exp), other.fp)
	}
	return nval.quickCanonicalize()
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// quickMul combines two values without any canonicalization.
// Cheaper than Mul, but the mantissa's own exponent field can overflow
// after enough consecutive steps, see reduce.go.
func (v Value) quickMul(other Value) Value {
	return Value{fp: v.fp * other.fp, exp: v.exp + other.exp}
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	return v.quickMul(other).quickDownCanonicalize()
}

// Div returns v / other.
// Division by zero propagates the native infinity, detectable with IsValid.
func (v Value) Div(other Value) Value {
	nval := Value{fp: v.fp / other.fp, exp: v.exp - other.exp}
	return nval.quickUpCanonicalize()
}

// FMA returns v*b + c.
// This is not a correctly rounded fused operation: the product is
// rounded before the addition. A documented accuracy limitation.
func (v Value) FMA(b, c Value) Value {
	return v.Mul(b).Add(c)
}

// Sqrt returns the square root of v.
// Zero or negative input yields zero rather than an invalid value.
func (v Value) Sqrt() Value {
	if v.IsZero() || v.fp < 0 {
		return zero
	}
	nval := Value{fp: math.Sqrt(v.fp), exp: v.exp / 2}
	// integer division truncates for odd exponents, a quick pass
	// cannot correct that
	return nval.Canonicalize()
}

// ScalePow2 returns v * 2^power.
// The mantissa is untouched, so no canonicalization is needed.
func (v Value) ScalePow2(power int64) Value {
	return Value{fp: v.fp, exp: v.exp + power}
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	sa, sb := v.fp < 0, other.fp < 0
	if sa && !sb {
		return -1
	}
	if !sa && sb {
		return 1
	}
	flip := 1
	if sa {
		flip = -1
	}
	if v.exp > other.exp {
		return flip
	}
	if v.exp < other.exp {
		return -flip
	}
	switch {
	case v.fp < other.fp:
		return -1
	case v.fp > other.fp:
		return 1
	default:
		return 0
	}
}

// Eq returns true if both values are zero, or if their mantissa bit
// patterns and high exponents match exactly. Two numerically equal but
// differently scaled values compare unequal unless both are
// canonicalized first.
func (v Value) Eq(other Value) bool {
	if v.IsZero() {
		return other.IsZero()
	}
	return v.fp == other.fp && v.exp == other.exp
}

// Pow returns x^n as an extended value, by binary powering over the
// extended multiply, so the result survives exponents far outside
// float64 range.
func Pow(x float64, n int64) Value {
	if x == 0 {
		return zero
	}
	if n < 0 {
		// -MinInt64 is not representable; the clamped power is just as
		// far outside the exponent range
		if n == math.MinInt64 {
			n++
		}
		n = -n
		x = 1 / x
	}
	power := FromFloat64(x)
	result := one
	for n != 0 {
		if n&1 != 0 {
			result = result.Mul(power)
		}
		power = power.Mul(power)
		n >>= 1
	}
	return result
}

// Pow10 returns 10^n as an extended value.
func Pow10(n int64) Value {
	return Pow(10, n)
}
