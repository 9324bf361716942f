// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/efp/internal/fp64"
)

// Decimal returns the value as an arbitrary-precision decimal, exactly.
// The mantissa is decomposed into its 53-bit integer significand and a
// binary shift, and the whole binary exponent is applied in decimal
// arithmetic: positive shifts multiply by an exact power of two,
// negative ones use the identity 2^-k = 5^k * 10^-k, since decimal
// division is inexact. Huge exponents allocate proportionally.
func (v Value) Decimal() decimal.Decimal {
	if v.IsZero() {
		return decimal.Zero
	}
	mant := int64(fp64.Fraction(v.fp) | 1<<fp64.FracBits)
	if fp64.Sign(v.fp) == 1 {
		mant = -mant
	}
	d := decimal.NewFromInt(mant)
	e := v.FullExponent() - fp64.FracBits
	switch {
	case e > 0:
		two := decimal.NewFromInt(2)
		d = d.Mul(two.Pow(decimal.NewFromInt(e)))
	case e < 0:
		five := decimal.NewFromInt(5)
		d = d.Mul(five.Pow(decimal.NewFromInt(-e))).Shift(int32(e))
	}
	return d
}

// FromDecimal returns a canonical value for d. The coefficient and the
// decimal exponent are combined in big.Float arithmetic wide enough
// that the only rounding left is the final one to float64 precision.
// In particular a value that went through Decimal comes back exactly.
func FromDecimal(d decimal.Decimal) Value {
	const prec = 128
	res := new(big.Float).SetPrec(prec).SetInt(d.Coefficient())
	if e := int64(d.Exponent()); e != 0 {
		k := e
		if k < 0 {
			k = -k
		}
		pow := new(big.Float).SetPrec(prec).SetInt(
			new(big.Int).Exp(big.NewInt(10), big.NewInt(k), nil))
		if e > 0 {
			res.Mul(res, pow)
		} else {
			res.Quo(res, pow)
		}
	}
	return FromBigFloat(res)
}
