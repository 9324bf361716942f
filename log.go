// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import (
	"math"

	"github.com/avdva/efp/internal/fp64"
)

// log2f returns the base-2 logarithm of v as a float64.
// The library log2 loses precision when its argument is close to 1.0,
// and cannot be applied at all when the full exponent is outside
// float64 range, so the result is constructed manually there.
func (v Value) log2f() float64 {
	if v.IsZero() {
		// zeroedFraction would rebuild the zero mantissa into 1.0 and
		// leak the sentinel exponent
		return 0
	}
	d := v.zeroedFraction()
	if d <= 0 {
		return 0
	}
	e := v.FullExponent()
	if d == 1 {
		// the logarithm is exactly the exponent
		return float64(e)
	}
	if !fp64.ExponentBelow(e) && !fp64.ExponentAbove(e) {
		// math.Log2 splits off the exponent and logs the fraction
		// separately, which cancels badly for arguments near 1.
		// Log keeps full accuracy there.
		return math.Log(v.Float64()) / math.Ln2
	}
	var logWeight, dlog float64
	if e < 0 {
		logWeight = -1
		dlog = -math.Log2(d / 2) // force a negative log fraction
		e = -(e + 1)
	} else {
		logWeight = 1
		dlog = math.Log2(d)
	}
	// track the case where the fractional log underflowed to zero
	uflow := dlog == 0
	// construct an unsigned 64-bit value representing the logarithm,
	// normalized to have its MSB set, extracting one fractional bit of
	// the mantissa's log per doubling
	logVal := uint64(e)
	for logVal>>63 == 0 {
		logVal *= 2
		dlog *= 2
		if dlog >= 1 {
			logVal++
			dlog--
		}
		logWeight *= 0.5
	}
	if uflow || dlog != 0 {
		// set the LSB to break the round-to-nearest tie
		logVal |= 1
	}
	return float64(logVal) * logWeight
}

// Log2 returns the base-2 logarithm of v.
// Usable even when the full exponent is far outside float64 range.
func (v Value) Log2() Value {
	return FromFloat64(v.log2f())
}

// Log10 returns the base-10 logarithm of v.
func (v Value) Log10() Value {
	return v.Log2().Mul(FromFloat64(math.Log10(2)))
}
