// Package matrix provides Triangular[T], an upper-triangular n×n matrix that
// stores only the diagonal and the cells above it.
//
// Row i is a vector.Vector of length n-i whose start index is i, so (i, j) is
// addressed through the row's own position j. Cells below the diagonal are not
// stored at all: asking for (i, j) with j < i fails with ErrIndexOutOfRange,
// exactly like any other out-of-range vector access.
//
// The matrix owns its rows. Clone, Assign, Row and Rows copy; Add and Sub build
// new matrices from row-wise vector arithmetic and require equal dimensions
// (ErrSizeMismatch otherwise). Equality compares row contents; row start
// indices are not part of it.
//
// Textual form: each row in the vector format, one row per line.
//
//	m, _ := matrix.New[int](2)
//	_ = m.Set(0, 0, 1)
//	_ = m.Set(0, 1, 3)
//	_ = m.Set(1, 1, 5)
//	fmt.Print(m) // "1 3 \n5 \n"
//
// For numerical work beyond addition (solves, determinants, products), convert
// with ToTriDense and use gonum.
package matrix
