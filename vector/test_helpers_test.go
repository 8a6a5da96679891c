// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers
//
// Purpose:
//   • Provide small deterministic fixtures shared by the vector tests.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
)

// sample is the fixture used across the arithmetic tests.
var sample = []int{1, 2, 3, 5, 4}

// MustVector builds a vector from values at the given start index or fails the test.
func MustVector[T vector.Number](t testing.TB, values []T, start int, opts ...vector.Option) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(values, start, opts...)
	require.NoError(t, err)

	return v
}

// MustNew builds a zero vector or fails the test.
func MustNew[T vector.Number](t testing.TB, size, start int, opts ...vector.Option) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](size, start, opts...)
	require.NoError(t, err)

	return v
}
