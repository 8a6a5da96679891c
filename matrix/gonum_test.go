package matrix_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToTriDense places each stored value at its column and zero below.
func TestToTriDense(t *testing.T) {
	m := MustTriangular(t, [][]int{{1, 3}, {5}})

	td, err := m.ToTriDense()
	require.NoError(t, err)

	n, kind := td.Triangle()
	require.Equal(t, 2, n)
	require.Equal(t, mat.Upper, kind)
	require.Equal(t, 1.0, td.At(0, 0))
	require.Equal(t, 3.0, td.At(0, 1))
	require.Equal(t, 0.0, td.At(1, 0))
	require.Equal(t, 5.0, td.At(1, 1))

	require.InDelta(t, 5.0, mat.Det(td), 1e-12) // product of the diagonal

	empty, err := matrix.New[int](0)
	require.NoError(t, err)
	td, err = empty.ToTriDense()
	require.NoError(t, err)
	require.True(t, td.IsEmpty())
}

// TestToTriDenseRejectsNonUpperRows guards shapes built through FromRows.
func TestToTriDenseRejectsNonUpperRows(t *testing.T) {
	r0, err := vector.New[int](2, 0)
	require.NoError(t, err)
	r1, err := vector.New[int](2, 0) // starts below the diagonal
	require.NoError(t, err)

	m, err := matrix.FromRows([]*vector.Vector[int]{r0, r1})
	require.NoError(t, err)

	_, err = m.ToTriDense()
	require.ErrorIs(t, err, matrix.ErrNotUpper)
}

// TestFromTriDense round-trips through gonum and rejects lower triangles.
func TestFromTriDense(t *testing.T) {
	src := mat.NewTriDense(3, mat.Upper, []float64{
		1, 2, 3,
		0, 4, 5,
		0, 0, 6,
	})

	m, err := matrix.FromTriDense[int](src)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {6}}, upperRows(m))

	back, err := m.ToTriDense()
	require.NoError(t, err)
	require.True(t, mat.Equal(src, back))

	lower := mat.NewTriDense(2, mat.Lower, []float64{1, 0, 2, 3})
	_, err = matrix.FromTriDense[int](lower)
	require.ErrorIs(t, err, matrix.ErrNotUpper)

	_, err = matrix.FromTriDense[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilVector)
}
