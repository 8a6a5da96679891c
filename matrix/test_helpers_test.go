// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Build small, deterministic triangular fixtures from row literals.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustTriangular builds an n×n matrix from its upper rows, where rows[i]
// lists columns i..n-1. Fails the test on any error.
func MustTriangular[T matrix.Number](t testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Triangular[T] {
	t.Helper()
	m, err := matrix.New[T](len(rows), opts...)
	require.NoError(t, err)
	for i, row := range rows {
		for k, x := range row {
			require.NoError(t, m.Set(i, i+k, x))
		}
	}

	return m
}

// upperRows returns the stored values of m row by row.
func upperRows[T matrix.Number](m *matrix.Triangular[T]) [][]T {
	out := make([][]T, 0, m.Size())
	for _, r := range m.Rows() {
		out = append(out, r.Values())
	}

	return out
}
