// Copyright 2025 The xtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package xtensor_test

import (
	"fmt"

	"github.com/StavrosMast/xtensor"
)

// ExampleBroadcastShapes shows how differently-ranked shapes align.
func ExampleBroadcastShapes() {
	logical, err := xtensor.BroadcastShapes(
		xtensor.Shape{2, 1, 3},
		xtensor.Shape{4, 3},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(logical)
	// Output: [2 4 3]
}

// ExampleNewMultiIterator multiplies a 2x3 matrix by a broadcast row
// without materializing the broadcasted operand.
func ExampleNewMultiIterator() {
	logical := xtensor.Shape{2, 3}
	matrix := []int{1, 2, 3, 4, 5, 6}
	row := []int{10, 100, 1000}

	rowStrides, _ := xtensor.BroadcastStrides(
		xtensor.Shape{3}, xtensor.Strides{1}, logical)

	a := xtensor.NewBroadcastIterator(matrix, 0, logical.ComputeStrides(), logical)
	b := xtensor.NewBroadcastIterator(row, 0, rowStrides, logical)

	for m := xtensor.NewMultiIterator(logical, a, b); ; {
		fmt.Print(a.Value()*b.Value(), " ")
		if !m.Next() {
			break
		}
	}
	// Output: 10 200 3000 40 500 6000
}
