// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Value
		res decimal.Decimal
	}{
		{FromFloat64(1), decimal.New(1, 0)},
		{FromFloat64(0.5), decimal.New(5, -1)},
		{FromFloat64(-3.25), decimal.New(-325, -2)},
		{FromFloat64(12345), decimal.New(12345, 0)},
		{Pow(2, 2000), decimal.NewFromInt(2).Pow(decimal.NewFromInt(2000))},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.True(test.res.Equal(test.v.Decimal()))
		})
	}
	a.Equal(0, Zero().Decimal().Sign())
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	a.True(FromDecimal(decimal.Zero).IsZero())
	a.Equal(1.5e10, FromDecimal(decimal.New(15, 9)).Float64())
	a.Equal(-3.25, FromDecimal(decimal.New(-325, -2)).Float64())
	// inexact decimals round once, to float64 precision
	a.Equal(0.1, FromDecimal(decimal.New(1, -1)).Float64())

	v := FromDecimal(decimal.New(1, 10000))
	a.True(v.IsValid())
	a.EqualValues(33219, v.FullExponent())
	checkCanonical(a, v)
}

func TestDecimalRoundTrip(t *testing.T) {
	a := assert.New(t)
	vals := []Value{
		FromFloat64(0.5), FromFloat64(-3.25), FromFloat64(math.Pi),
		FromFloat64(1.5e10), Pow(2, 2000), Pow(2, -2000),
	}
	for _, v := range vals {
		got := FromDecimal(v.Decimal())
		a.True(got.Eq(v.Canonicalize()), v.GoString())
	}
}
