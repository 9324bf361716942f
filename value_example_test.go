// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efp

import (
	"encoding/json"
	"fmt"
)

func ExampleValue() {
	v1, err := FromString("1.5e+10")
	if err != nil {
		panic(err)
	}
	fmt.Printf("v1 as a float = %v, full exponent = %d\n", v1.Float64(), v1.FullExponent())

	v2 := FromFloat64(1.5e10)
	fmt.Printf("value from string: %s, value from float: %s, values are equal: %v\n", v1.String(), v2.String(), v1.Eq(v2))

	halves := make([]Value, 100)
	for i := range halves {
		halves[i] = FromFloat64(0.5)
	}
	p := Product(One(), halves)
	fmt.Printf("product of 100 halves: %s, its log2 = %v\n", p, p.Log2().Float64())

	data, err := json.Marshal(v1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	JSONMode = JSONModeME
	data, err = json.Marshal(v1)
	if err != nil {
		panic(err)
	}
	JSONMode = JSONModeString
	fmt.Printf("json for value and JSONModeME: %s\n", string(data))

	fmt.Printf("%s + %s = %s", v1.String(), v2.String(), v1.Add(v2).String())

	// Output:
	// v1 as a float = 1.5e+10, full exponent = 33
	// value from string: 1.5e+10, value from float: 1.5e+10, values are equal: true
	// product of 100 halves: 7.88860905221011805e-31, its log2 = -100
	// json for value: "1.5e+10"
	// json for value and JSONModeME: {"m":15000000000,"e":0}
	// 1.5e+10 + 1.5e+10 = 3.0e+10
}
