// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-sequence helpers: the outer "vector of vectors" semantics (deep copy,
//     equality, pairwise combination) spelled out once over []*vector.Vector.
//   - Triangular delegates here instead of re-implementing loops per method.
//
// Determinism:
//   - Rows are visited in index order 0..n-1.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// cloneRows deep-copies every row. A nil row is reported with its index.
func cloneRows[T vector.Number](rows []*vector.Vector[T]) ([]*vector.Vector[T], error) {
	out := make([]*vector.Vector[T], len(rows))
	for i, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("row %d: %w", i, ErrNilVector)
		}
		out[i] = r.Clone()
	}

	return out, nil
}

// equalRows reports equal row counts and pairwise vector equality.
// Row start indices are not compared; vector.Equal ignores them.
func equalRows[T vector.Number](a, b []*vector.Vector[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// assignRows copies src into dst, reusing dst's rows where they exist and
// reallocating the row slice when counts differ.
func assignRows[T vector.Number](dst, src []*vector.Vector[T]) []*vector.Vector[T] {
	if len(dst) != len(src) {
		dst = make([]*vector.Vector[T], len(src))
	}
	for i, r := range src {
		if dst[i] == nil {
			dst[i] = r.Clone()
			continue
		}
		_ = dst[i].Assign(r) // both non-nil: cannot fail
	}

	return dst
}

// combineRows applies f pairwise after checking row counts. f re-checks each
// row pair's size, so jagged operands of equal count still fail cleanly.
func combineRows[T vector.Number](
	a, b []*vector.Vector[T],
	f func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) ([]*vector.Vector[T], error) {
	if len(a) != len(b) {
		return nil, ErrSizeMismatch
	}
	out := make([]*vector.Vector[T], len(a))
	for i := range a {
		r, err := f(a[i], b[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}
