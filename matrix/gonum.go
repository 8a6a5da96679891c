// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge to gonum's *mat.TriDense (Upper kind) for solves, determinants and
//     products that this package deliberately does not implement.
//   - Conversions always copy.
//
// Notes:
//   - gonum works in float64 only; integer element types convert exactly up
//     to 2^53 and truncate toward zero on the way back.
//   - gonum rejects zero-size constructors, so n == 0 maps to a zero-value TriDense.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/utmatrix/vector"
)

const (
	ctxToTriDense   = "ToTriDense"
	ctxFromTriDense = "FromTriDense"
)

// ToTriDense copies m into a new upper *mat.TriDense.
// Each stored value lands at (i, StartIndex+k) of its row.
//
// Errors: ErrNotUpper when a row (from FromRows) reaches outside columns
// [i, n) of the upper triangle.
func (m *Triangular[T]) ToTriDense() (*mat.TriDense, error) {
	n := len(m.rows)
	if n == 0 {
		return &mat.TriDense{}, nil
	}
	data := make([]float64, n*n) // row-major, lower half left zero
	for i, r := range m.rows {
		start := r.StartIndex()
		if start < i || start+r.Size() > n {
			return nil, matrixErrorf(ctxToTriDense, i, start, ErrNotUpper)
		}
		for k, x := range r.Values() {
			data[i*n+start+k] = float64(x)
		}
	}

	return mat.NewTriDense(n, mat.Upper, data), nil
}

// FromTriDense copies an upper gonum triangle into a new Triangular.
//
// Errors:
//   - ErrNilVector for a nil source; ErrNotUpper for a lower triangle;
//     ErrInvalidSize above MaxSize; ErrNaNInf when the policy rejects a value.
func FromTriDense[T vector.Number](src mat.Triangular, opts ...Option) (*Triangular[T], error) {
	if src == nil {
		return nil, opsErrorf(ctxFromTriDense, ErrNilVector)
	}
	n, kind := src.Triangle()
	if kind != mat.Upper {
		return nil, opsErrorf(ctxFromTriDense, ErrNotUpper)
	}
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, opsErrorf(ctxFromTriDense, err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err = m.Set(i, j, T(src.At(i, j))); err != nil {
				return nil, opsErrorf(ctxFromTriDense, err)
			}
		}
	}

	return m, nil
}
