// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp64

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponent(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		exp int64
	}{
		{1, 0},
		{2, 1},
		{0.5, -1},
		{1536, 10},
		{-1536, 10},
		{math.MaxFloat64, 1023},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.exp, Exponent(test.f))
		})
	}
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	a.EqualValues(0, Sign(1))
	a.EqualValues(1, Sign(-1))
	a.EqualValues(0, Sign(0))
	a.EqualValues(1, Sign(math.Copysign(0, -1)))
}

func TestFraction(t *testing.T) {
	a := assert.New(t)
	a.EqualValues(0, Fraction(1))
	a.EqualValues(uint64(1)<<(FracBits-1), Fraction(1.5))
	a.EqualValues(uint64(1)<<(FracBits-1), Fraction(-3))
}

func TestAssemble(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		sign uint64
		exp  int64
		frac uint64
		f    float64
	}{
		{0, 0, 0, 1},
		{1, 1, 0, -2},
		{0, 10, 1 << (FracBits - 1), 1536},
		{0, -1, 0, 0.5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.f, Assemble(test.sign, test.exp, test.frac))
		})
	}
	// assembling the parts of a float gives it back
	for _, f := range []float64{1.25, -math.Pi, 6.125e-11, 2.5e300} {
		a.Equal(f, Assemble(uint64(Sign(f)), Exponent(f), Fraction(f)))
	}
}

func TestReplaceExponent(t *testing.T) {
	a := assert.New(t)
	a.Equal(24.0, ReplaceExponent(1.5, 4))
	a.Equal(-3.0, ReplaceExponent(-1.5, 1))
	a.Equal(1.5, ZeroExponent(1536))
	a.Equal(-1.5, ZeroExponent(-3))
}

func TestShiftExponent(t *testing.T) {
	a := assert.New(t)
	a.Equal(12.0, ShiftExponent(1.5, 3))
	a.Equal(0.375, ShiftExponent(1.5, -2))
	a.Equal(0.0, ShiftExponent(1.5, -3000))
}

func TestPower2(t *testing.T) {
	a := assert.New(t)
	a.Equal(8.0, Power2(3))
	a.Equal(1.0, Power2(0))
	a.Equal(0.25, Power2(-2))
	a.Equal(math.Ldexp(1, -1022), Power2(-1022))
	a.Equal(0.0, Power2(-1023))
}

func TestExponentRange(t *testing.T) {
	a := assert.New(t)
	a.True(ExponentBelow(-1023))
	a.False(ExponentBelow(-1022))
	a.True(ExponentAbove(1024))
	a.False(ExponentAbove(1023))
	a.False(ExponentAbove(MaxExponent))
}

func TestInf(t *testing.T) {
	a := assert.New(t)
	a.True(math.IsInf(Inf(0), 1))
	a.True(math.IsInf(Inf(1), -1))
}
