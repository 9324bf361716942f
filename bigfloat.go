// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import "math/big"

// BigFloat returns the value as an arbitrary-precision big.Float:
// the mantissa is converted exactly and then scaled by 2^exp with
// SetMantExp, which performs no rounding. High exponents beyond the
// big.Float exponent range saturate to its zero or infinity.
// The mantissa must not be a NaN.
func (v Value) BigFloat() *big.Float {
	f := new(big.Float).SetFloat64(v.fp)
	if v.IsZero() {
		return f
	}
	return f.SetMantExp(f, int(v.exp))
}

// FromBigFloat returns a canonical value for f, built from the
// (mantissa, 2-exponent) pair reported by MantExp. The mantissa is
// rounded to float64 precision, the exponent is preserved exactly.
func FromBigFloat(f *big.Float) Value {
	var mant big.Float
	exp := f.MantExp(&mant)
	fm, _ := mant.Float64()
	if fm == 0 {
		return zero
	}
	return Value{fp: fm, exp: int64(exp)}.Canonicalize()
}
