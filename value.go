// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package efp implements an extended-range floating-point number.
// A value keeps its mantissa in a float64 and carries an extra 64-bit
// binary exponent, so that products of many small or large magnitudes,
// like probabilities, never overflow or underflow, while no individual
// value needs more than float64 precision.
//
// The representation keeps the low 6 bits of the logical exponent
// inside the float64 and the rest, scaled, in the extra field.
// Based on ACM Algorithm 567.
package efp

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/avdva/efp/internal/fp64"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1.5e+10"`.
	JSONModeString = iota
	// JSONModeME marshals values with mantissa and exponent, like `{"m":1.5,"e":64}`.
	JSONModeME
)

const (
	// expBits is the number of exponent bits kept inside the float64.
	expBits    = 6
	expModulus = 1 << expBits

	// zeroExp is the high exponent of the zero value.
	// Smaller than any exponent reachable by arithmetic.
	zeroExp = math.MinInt64 / 2
)

var (
	zero = Value{exp: zeroExp}
	one  = FromFloat64(1)
)

// hiPart and loPart split x according to the number of bits,
// with the remainder always nonnegative.
func hiPart(x int64, bits uint) int64 {
	return x &^ (1<<bits - 1)
}

func loPart(x int64, bits uint) int64 {
	return x & (1<<bits - 1)
}

// Value is an extended-range floating-point number equal to fp * 2^exp.
// In canonical form the native exponent of fp lies in [0, 64) and exp
// is a multiple of 64. Operators return quick-canonicalized results,
// whose mantissa stays within [2^-64, 2^64); call Canonicalize to
// restore the strict form.
//
// Values are immutable, every operation returns a new Value.
// Use Zero, FromFloat64 or the other constructors; arithmetic on a bare
// Value{} literal is not meaningful.
type Value struct {
	fp  float64
	exp int64
}

// Zero returns the zero value.
func Zero() Value {
	return zero
}

// One returns the value 1.0.
func One() Value {
	return one
}

// FromMantExp assembles a value from a mantissa and a high exponent as is,
// without canonicalization.
func FromMantExp(fp float64, exp int64) Value {
	return Value{fp: fp, exp: exp}
}

// MantExp returns the mantissa and the high exponent as stored.
func (v Value) MantExp() (fp float64, exp int64) {
	return v.fp, v.exp
}

// FromFloat64 returns a canonical value equal to f.
func FromFloat64(f float64) Value {
	return Value{fp: f}.Canonicalize()
}

// IsZero returns true if the value has a zero mantissa.
func (v Value) IsZero() bool {
	return v.fp == 0
}

// IsValid returns false if the mantissa is a NaN or an infinity.
// Arithmetic does not guard against producing such values from
// pathological inputs, so callers can check the outcome here.
func (v Value) IsValid() bool {
	return !math.IsNaN(v.fp) && !math.IsInf(v.fp, 0)
}

// FullExponent returns the logical base-2 exponent of the value:
// the high exponent plus the mantissa's own native exponent.
func (v Value) FullExponent() int64 {
	return v.exp + fp64.Exponent(v.fp)
}

// zeroedFraction returns the mantissa with its native exponent forced to zero,
// a number in [1, 2).
func (v Value) zeroedFraction() float64 {
	return fp64.ZeroExponent(v.fp)
}

// Canonicalize restores the canonical form: the full exponent is split
// so that its low 6 bits stay in the mantissa's exponent field and the
// rest, a multiple of 64, goes to the high exponent. This is the only
// operation guaranteed to restore the invariant from an arbitrary
// input, and the most expensive one.
func (v Value) Canonicalize() Value {
	if v.IsZero() {
		return zero
	}
	nexp := v.FullExponent()
	return Value{
		fp:  fp64.ReplaceExponent(v.fp, loPart(nexp, expBits)),
		exp: hiPart(nexp, expBits),
	}
}

// quickCanonicalize fixes the mantissa when it is within one modulus
// width of its range, which holds after an addition.
func (v Value) quickCanonicalize() Value {
	high := fp64.Power2(expModulus)
	if math.Abs(v.fp) < 1 {
		v.fp *= high
		v.exp -= expModulus
	} else if math.Abs(v.fp) >= high {
		v.fp *= fp64.Power2(-expModulus)
		v.exp += expModulus
	}
	return v
}

// quickDownCanonicalize fixes a mantissa that can only have grown,
// which holds after a multiplication.
func (v Value) quickDownCanonicalize() Value {
	if math.Abs(v.fp) >= fp64.Power2(expModulus) {
		v.fp *= fp64.Power2(-expModulus)
		v.exp += expModulus
	}
	return v
}

// quickUpCanonicalize fixes a mantissa that can only have shrunk,
// which holds after a division.
func (v Value) quickUpCanonicalize() Value {
	if math.Abs(v.fp) < 1 {
		v.fp *= fp64.Power2(expModulus)
		v.exp -= expModulus
	}
	return v
}

// Float64 converts the value to a float64.
// Out-of-range values saturate silently: too small an exponent gives a
// signed zero, too large a one gives a signed infinity.
func (v Value) Float64() float64 {
	if v.IsZero() {
		return 0
	}
	fullExp := v.FullExponent()
	if fp64.ExponentBelow(fullExp) {
		return math.Copysign(0, v.fp)
	}
	if fp64.ExponentAbove(fullExp) {
		return fp64.Inf(fp64.Sign(v.fp))
	}
	return fp64.ReplaceExponent(v.fp, fullExp)
}

// Uint64 converts the value to a uint64, clamping to [0, MaxUint64].
func (v Value) Uint64() uint64 {
	if v.fp <= 0 {
		return 0
	}
	d := v.Float64()
	if d >= 1<<64 {
		return math.MaxUint64
	}
	return uint64(d)
}

// Int64 converts the value to an int64, clamping to [MinInt64, MaxInt64].
func (v Value) Int64() int64 {
	d := v.Float64()
	if d >= 1<<63 {
		return math.MaxInt64
	}
	if d <= -1<<63 {
		return math.MinInt64
	}
	return int64(d)
}

// MarshalJSON marshals the value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value) MarshalJSON() ([]byte, error) {
	switch JSONMode {
	case JSONModeME:
		c := v.Canonicalize()
		if c.IsZero() {
			return []byte(`{"m":0,"e":0}`), nil
		}
		return json.Marshal(struct {
			M float64 `json:"m"`
			E int64   `json:"e"`
		}{M: c.fp, E: c.exp})
	default: // marshal as a string
		return []byte(`"` + v.String() + `"`), nil
	}
}

// UnmarshalJSON unmarshals a string or an {"m":...,"e":...} object into a value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			M float64 `json:"m"`
			E int64   `json:"e"`
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*v = FromMantExp(d.M, d.E).Canonicalize()
	default:
		s := string(data)
		if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
			s = s[1 : len(s)-1]
		}
		value, err := FromString(s)
		if err != nil {
			return err
		}
		*v = value
	}
	return nil
}
