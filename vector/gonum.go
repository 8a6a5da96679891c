// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Bridge to gonum for callers that need BLAS-backed routines (norms, solves)
//     on vector data. Conversions always copy; gonum values never alias storage.
//
// Notes:
//   - gonum works in float64 only. Integer element types convert exactly up to
//     2^53 and truncate toward zero on the way back.

package vector

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxFromVecDense = "FromVecDense"

// ToVecDense copies v into a new *mat.VecDense in storage order.
// An empty vector maps to the zero-value VecDense (gonum rejects zero-length
// constructors).
func (v *Vector[T]) ToVecDense() *mat.VecDense {
	if len(v.data) == 0 {
		return &mat.VecDense{}
	}
	buf := make([]float64, len(v.data))
	for i, x := range v.data {
		buf[i] = float64(x)
	}

	return mat.NewVecDense(len(buf), buf)
}

// FromVecDense copies any gonum vector into a new Vector starting at startIndex.
//
// Errors: ErrNilVector for a nil source; the same errors as FromSlice otherwise.
func FromVecDense[T Number](src mat.Vector, startIndex int, opts ...Option) (*Vector[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromVecDense, ErrNilVector)
	}
	values := make([]T, src.Len())
	for i := range values {
		values[i] = T(src.AtVec(i))
	}

	return FromSlice(values, startIndex, opts...)
}
