package matrix_test

import (
	"fmt"

	"github.com/yarovoy/cfpq/matrix"
)

// ExampleMul multiplies two 2x2 boolean matrices and reports the product's
// nonzero coordinates.
func ExampleMul() {
	a, _ := matrix.NewBool(2, 2)
	_ = a.Set(0, 1)
	b, _ := matrix.NewBool(2, 2)
	_ = b.Set(1, 0)

	prod, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nnz:", prod.Nnz())
	fmt.Println("nonzeros:", prod.Nonzeros())

	// Output:
	// nnz: 1
	// nonzeros: [{0 0}]
}
