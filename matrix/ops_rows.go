// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix addition and subtraction as row-wise vector arithmetic.
//   - Results are fresh matrices; operands are never mutated, so a failure
//     part-way through leaves both sides intact.

package matrix

import "github.com/katalvlaran/utmatrix/vector"

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
)

// Add returns m + o.
//
// Errors:
//   - ErrNilVector for a nil operand.
//   - ErrSizeMismatch when row counts differ, or when a row pair differs in
//     length (only possible for shapes built through FromRows).
//
// Complexity: O(n²/2).
func (m *Triangular[T]) Add(o *Triangular[T]) (*Triangular[T], error) {
	return m.combine(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns m − o. Same contract as Add.
func (m *Triangular[T]) Sub(o *Triangular[T]) (*Triangular[T], error) {
	return m.combine(ctxSub, o, (*vector.Vector[T]).Sub)
}

func (m *Triangular[T]) combine(
	method string,
	o *Triangular[T],
	f func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) (*Triangular[T], error) {
	if m == nil || o == nil {
		return nil, opsErrorf(method, ErrNilVector)
	}
	rows, err := combineRows(m.rows, o.rows, f)
	if err != nil {
		return nil, opsErrorf(method, err)
	}

	return &Triangular[T]{rows: rows}, nil
}
