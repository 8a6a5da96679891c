// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin entry points that compose the canonical methods; no loop duplication
//     beyond what a constructor needs.

package matrix

import "github.com/katalvlaran/utmatrix/vector"

const ctxIdentity = "Identity"

// Identity returns the n×n upper-triangular identity (ones on the diagonal).
// Complexity: O(n²/2) zeroing + O(n) diagonal writes.
func Identity[T vector.Number](n int, opts ...Option) (*Triangular[T], error) {
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, opsErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1) // (i,i) is always the first stored cell of row i
	}

	return m, nil
}

// Sum is an alias for a.Add(b).
func Sum[T vector.Number](a, b *Triangular[T]) (*Triangular[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff[T vector.Number](a, b *Triangular[T]) (*Triangular[T], error) { return a.Sub(b) }

// CloneMatrix returns a deep copy of m, or nil for a nil input.
func CloneMatrix[T vector.Number](m *Triangular[T]) *Triangular[T] {
	if m == nil {
		return nil
	}

	return m.Clone()
}
