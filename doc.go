// Package utmatrix is an in-memory toolkit of two generic numeric containers:
// start-indexed vectors and the upper-triangular matrices built from them.
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/ — Vector[T]: bounds-checked, deep-copyable sequence addressed from a start index
//	matrix/ — Triangular[T]: n×n upper triangle stored as jagged vector rows
//
// Row i of an n×n matrix is a vector of length n-i starting at index i:
//
//	row 0: [a00 a01 a02]
//	row 1:     [a11 a12]
//	row 2:         [a22]
//
// Cells below the diagonal are not stored and cannot be addressed.
//
// Both types are plain values: no goroutines, no locks, no I/O beyond a
// simple textual format. Errors are sentinels checked with errors.Is.
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix
