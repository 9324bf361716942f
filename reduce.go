// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import "github.com/avdva/efp/internal/fp64"

const (
	// maxQuickMuls is the number of consecutive uncanonicalized
	// multiplies that cannot overflow the mantissa's own exponent
	// field, with a safety margin.
	maxQuickMuls = fp64.MaxExponent/expModulus - 2

	// reduceLanes is the number of interleaved partial products kept by
	// the unrolled path. The lanes expose independent multiply chains
	// to a pipelined unit within a single thread of control.
	reduceLanes = 4

	// minLanesLen is the input length below which maintaining the lanes
	// costs more than it saves.
	minLanesLen = 8
)

// Product returns init times the product of all values in data.
// Renormalization is deferred as long as numerically safe, so the
// result equals a plain left-to-right multiply up to rounding, at near
// raw-multiplication throughput. The result is always canonical.
func Product(init Value, data []Value) Value {
	if len(data) >= minLanesLen {
		return product4(init, data)
	}
	return product1(init, data)
}

func product1(init Value, data []Value) Value {
	prod := init
	count := 0
	for _, v := range data {
		prod = prod.quickMul(v)
		if count++; count > maxQuickMuls {
			prod = prod.Canonicalize()
			count = 0
		}
	}
	return prod.Canonicalize()
}

func product4(init Value, data []Value) Value {
	// assumes len(data) >= reduceLanes
	var prod [reduceLanes]Value
	for j := range prod {
		prod[j] = data[j]
	}
	prod[0] = prod[0].quickMul(init)
	count := 0
	i := reduceLanes
	for ; i <= len(data)-reduceLanes; i += reduceLanes {
		for j := range prod {
			prod[j] = prod[j].quickMul(data[i+j])
		}
		if count++; count > maxQuickMuls {
			count = 0
			for j := range prod {
				prod[j] = prod[j].Canonicalize()
			}
		}
	}
	// combining the lanes multiplies their accumulated growth, so the
	// safe bound is divided across them here
	if count*reduceLanes > maxQuickMuls {
		for j := range prod {
			prod[j] = prod[j].Canonicalize()
		}
	}
	result := prod[0]
	for j := 1; j < reduceLanes; j++ {
		result = result.quickMul(prod[j])
	}
	for ; i < len(data); i++ {
		result = result.quickMul(data[i])
	}
	return result.Canonicalize()
}

// productSlow is the trivial canonicalizing multiply, kept as the
// reference the deferred paths are tested against.
func productSlow(init Value, data []Value) Value {
	prod := init
	for _, v := range data {
		prod = prod.Mul(v)
	}
	return prod.Canonicalize()
}
