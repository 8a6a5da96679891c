package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/matrix"
)

// ExampleTriangular builds two 2×2 upper-triangular matrices and adds them.
func ExampleTriangular() {
	m, _ := matrix.New[int](2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 3)
	_ = m.Set(1, 1, 5)

	_, err := m.At(1, 0)
	fmt.Println(err)

	sum, _ := m.Add(m.Clone())
	fmt.Printf("%q\n", sum.String())

	// Output:
	// Triangular.At(1,0): Vector.At(0): vector: index out of range
	// "2 6 \n10 \n"
}
