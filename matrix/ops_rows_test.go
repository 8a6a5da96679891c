package matrix_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
)

// TestAddSub walks the [[1,3],[5]] scenario.
func TestAddSub(t *testing.T) {
	m := MustTriangular(t, [][]int{{1, 3}, {5}})
	n := MustTriangular(t, [][]int{{1, 3}, {5}})

	sum, err := m.Add(n)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 6}, {10}}, upperRows(sum))

	diff, err := m.Sub(n)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0}}, upperRows(diff))

	require.Equal(t, [][]int{{1, 3}, {5}}, upperRows(m)) // operands untouched

	// The result is a proper triangular matrix.
	_, err = sum.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

// TestAddSubSizeMismatch rejects different dimensions.
func TestAddSubSizeMismatch(t *testing.T) {
	m, err := matrix.New[int](2)
	require.NoError(t, err)
	n, err := matrix.New[int](3)
	require.NoError(t, err)

	_, err = m.Add(n)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)

	_, err = m.Sub(n)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)

	_, err = m.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilVector)
}

// TestAddJaggedRowMismatch covers equal row counts with differently sized rows.
func TestAddJaggedRowMismatch(t *testing.T) {
	long, err := vector.New[int](3, 0)
	require.NoError(t, err)
	short, err := vector.New[int](2, 0)
	require.NoError(t, err)

	a, err := matrix.FromRows([]*vector.Vector[int]{long})
	require.NoError(t, err)
	b, err := matrix.FromRows([]*vector.Vector[int]{short})
	require.NoError(t, err)

	_, err = a.Add(b)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

// TestFacades checks Identity and the aliases.
func TestFacades(t *testing.T) {
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {1, 0}, {1}}, upperRows(id))

	sum, err := matrix.Sum(id, id)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0, 0}, {2, 0}, {2}}, upperRows(sum))

	diff, err := matrix.Diff(sum, id)
	require.NoError(t, err)
	require.True(t, diff.Equal(id))

	_, err = matrix.Identity[int](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	require.Nil(t, matrix.CloneMatrix[int](nil))
	require.True(t, matrix.CloneMatrix(id).Equal(id))
}
