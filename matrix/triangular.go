// SPDX-License-Identifier: MIT

// Package matrix - upper-triangular storage over jagged vector rows.
//
// Purpose:
//   - Store only the upper triangle (diagonal included) of an n×n matrix:
//     row i is a vector.Vector of length n-i whose start index is i, so column
//     j of row i lives at the row's position j.
//   - Keep the strictly-lower triangle structurally absent: (i, j) with j < i is
//     below the row's start index and fails the row's own bounds check.
//   - Compose rather than inherit: every "outer vector" behavior goes through
//     the row-sequence helpers in rows.go.
//
// Complexity quicksheet:
//   - New/Clone/Equal/Assign/Add/Sub: O(n²/2); At/Set: O(1); Row: O(n).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxAssign   = "Assign"
)

// matrixErrorf wraps an error with a uniform Triangular context and callsite indices.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Triangular.%s(%d,%d): %w", method, i, j, err)
}

// opsErrorf wraps an error with the method name only.
func opsErrorf(method string, err error) error {
	return fmt.Errorf("Triangular.%s: %w", method, err)
}

// Number is the element type set, shared with package vector.
type Number = vector.Number

// Triangular is an upper-triangular n×n matrix of T.
//   - rows[i] has Size() == n-i and StartIndex() == i when built by New.
//   - rows are owned exclusively; accessors hand out copies, never row pointers.
type Triangular[T vector.Number] struct {
	rows []*vector.Vector[T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Triangular[float64])(nil)

// New creates an n×n upper-triangular zero matrix.
// MAIN DESCRIPTION:
//   - Allocate n rows; row i = vector.New(n-i, i, opts...).
//
// Implementation:
//   - Stage 1: validate 0 ≤ n ≤ MaxSize.
//   - Stage 2: allocate every row with the triangular length/offset formula.
//
// Errors:
//   - ErrInvalidSize (nothing is returned on this path).
//
// Complexity:
//   - Time O(n²/2), Space O(n²/2).
//
// Notes:
//   - opts are forwarded to every row (numeric policy, output separator).
func New[T vector.Number](n int, opts ...Option) (*Triangular[T], error) {
	if n < 0 || n > MaxSize {
		return nil, matrixErrorf(ctxNew, n, n, ErrInvalidSize)
	}
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		r, err := vector.New[T](n-i, i, opts...)
		if err != nil {
			return nil, matrixErrorf(ctxNew, n, n, err)
		}
		rows[i] = r
	}

	return &Triangular[T]{rows: rows}, nil
}

// NewDefault creates a DefaultSize×DefaultSize zero matrix. Cannot fail.
func NewDefault[T vector.Number](opts ...Option) *Triangular[T] {
	m, _ := New[T](DefaultSize, opts...) // DefaultSize is within bounds

	return m
}

// FromRows builds a matrix from a raw row sequence, deep-copying every row
// (elements, size and start index).
//
// The triangular shape is NOT re-validated: callers converting a
// vector-of-vectors are trusted to supply rows shaped like New's.
//
// Errors: ErrInvalidSize when len(rows) > MaxSize; ErrNilVector for a nil row.
func FromRows[T vector.Number](rows []*vector.Vector[T]) (*Triangular[T], error) {
	if len(rows) > MaxSize {
		return nil, matrixErrorf(ctxFromRows, len(rows), len(rows), ErrInvalidSize)
	}
	cp, err := cloneRows(rows)
	if err != nil {
		return nil, opsErrorf(ctxFromRows, err)
	}

	return &Triangular[T]{rows: cp}, nil
}

// Size returns the dimension n (the row count). No side effects.
func (m *Triangular[T]) Size() int { return len(m.rows) }

// row returns the stored row i or ErrIndexOutOfRange.
func (m *Triangular[T]) row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, ErrIndexOutOfRange
	}

	return m.rows[i], nil
}

// At returns element (i, j).
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, n) or j is outside row i's
//     range; every j < i is below the row's start index and fails.
//
// Complexity: O(1).
func (m *Triangular[T]) At(i, j int) (T, error) {
	r, err := m.row(i)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, i, j, err)
	}
	x, err := r.At(j)
	if err != nil {
		return x, matrixErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// Set stores x at (i, j). Same bounds as At; the row's numeric policy applies.
func (m *Triangular[T]) Set(i, j int, x T) error {
	r, err := m.row(i)
	if err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	if err = r.Set(j, x); err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Row returns a deep copy of row i. Writing to the copy does not affect m;
// use Set to modify the matrix.
func (m *Triangular[T]) Row(i int) (*vector.Vector[T], error) {
	r, err := m.row(i)
	if err != nil {
		return nil, matrixErrorf(ctxRow, i, i, err)
	}

	return r.Clone(), nil
}

// Rows returns deep copies of all rows, the raw form accepted by FromRows.
func (m *Triangular[T]) Rows() []*vector.Vector[T] {
	out, _ := cloneRows(m.rows) // stored rows are never nil

	return out
}

// Clone returns a deep copy of every row.
// Complexity: O(n²/2).
func (m *Triangular[T]) Clone() *Triangular[T] {
	return &Triangular[T]{rows: m.Rows()}
}

// Equal reports equal dimensions and equal row contents (size and values).
// Row start indices are not compared. Two nil matrices are equal.
func (m *Triangular[T]) Equal(o *Triangular[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m == o {
		return true
	}

	return equalRows(m.rows, o.rows)
}

// NotEqual is the negation of Equal.
func (m *Triangular[T]) NotEqual(o *Triangular[T]) bool { return !m.Equal(o) }

// Assign replaces m's rows with deep copies of o's rows, reallocating when the
// dimensions differ. Self-assignment is a no-op.
//
// Errors: ErrNilVector when m or o is nil; m is left untouched.
func (m *Triangular[T]) Assign(o *Triangular[T]) error {
	if m == nil || o == nil {
		return opsErrorf(ctxAssign, ErrNilVector)
	}
	if m == o {
		return nil
	}
	m.rows = assignRows(m.rows, o.rows)

	return nil
}
