// Package vector provides Vector[T], a bounds-checked, deep-copyable sequence
// of numbers addressed from a caller-chosen start index.
//
// A vector of size n with start index s accepts positions s..s+n-1; anything
// else (including positions below s) fails with ErrIndexOutOfRange. Start
// indices let a vector stand for a tail slice of a longer logical row, which
// is how the matrix package stores the rows of an upper-triangular matrix.
//
// Copies are deep: Clone and Assign never share storage. Arithmetic (AddScalar,
// Add, Dot, ...) returns fresh values and never mutates operands. Binary
// operations require equal sizes and fail with ErrSizeMismatch otherwise;
// start indices play no part in equality or size checks.
//
// Vectors read and write a plain textual form: the elements in order, each
// followed by a space.
//
//	v, _ := vector.New[int](3, 0)
//	_ = v.Set(0, 1)
//	fmt.Print(v) // "1 0 0 "
package vector
