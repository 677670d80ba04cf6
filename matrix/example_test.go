// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/VsIG-official/SML/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// 58 64
	// 139 154
}

// ExampleTranspose turns a row into a column.
func ExampleTranspose() {
	row, _ := matrix.NewDenseFrom([][]float64{{0, 1, 2}})
	col, _ := matrix.Transpose(row)
	fmt.Print(col)
	// Output:
	// 0
	// 1
	// 2
}

// ExampleDense_AddInPlace accumulates into the receiver.
func ExampleDense_AddInPlace() {
	acc, _ := matrix.NewDenseFrom([][]float64{{1, 1}})
	step, _ := matrix.NewDenseFrom([][]float64{{0.5, 2}})

	for i := 0; i < 2; i++ {
		if _, err := acc.AddInPlace(step); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Print(acc)
	// Output:
	// 2 5
}

// ExampleHadamard shows the element-wise product.
func ExampleHadamard() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 2}, {2, 2}})
	h, _ := matrix.Hadamard(a, a)
	fmt.Print(h)
	// Output:
	// 4 4
	// 4 4
}
