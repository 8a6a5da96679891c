package vector_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
)

// TestWriteTo checks the "value + space" format with no newline.
func TestWriteTo(t *testing.T) {
	v := MustVector(t, sample, 3)

	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "1 2 3 5 4 ", buf.String())
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, buf.String(), v.String())
}

// TestWriteToEmpty ensures an empty vector writes nothing.
func TestWriteToEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := MustNew[int](t, 0, 0).WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, buf.String())
}

// TestScanRoundTrip reads back what WriteTo produced, ignoring start index.
func TestScanRoundTrip(t *testing.T) {
	src := MustVector(t, []float64{1.5, -2, 3e10}, 0)
	dst := MustNew[float64](t, 3, 9)

	require.NoError(t, dst.Scan(strings.NewReader(src.String())))
	require.True(t, dst.Equal(src))
	require.Equal(t, 9, dst.StartIndex())
}

// TestScanWhitespace accepts tabs and newlines between tokens and stops after Size tokens.
func TestScanWhitespace(t *testing.T) {
	v := MustNew[int](t, 3, 0)
	rs := vector.AsRuneScanner(strings.NewReader("1\t2\n 3 4"))

	require.NoError(t, v.Scan(rs))
	require.Equal(t, []int{1, 2, 3}, v.Values())

	rest := MustNew[int](t, 1, 0) // remaining token stays in the stream
	require.NoError(t, rest.Scan(rs))
	require.Equal(t, []int{4}, rest.Values())
}

// TestScanMalformedIsAtomic ensures short or bad input leaves the vector unchanged.
func TestScanMalformedIsAtomic(t *testing.T) {
	for _, in := range []string{"1 2", "1 x 3", ""} {
		v := MustVector(t, []int{7, 7, 7}, 0)
		err := v.Scan(strings.NewReader(in))
		require.ErrorIs(t, err, vector.ErrMalformedInput, "input %q", in)
		require.Equal(t, []int{7, 7, 7}, v.Values())
	}
}

// TestScanNil ensures a nil receiver is reported, not dereferenced.
func TestScanNil(t *testing.T) {
	var v *vector.Vector[int]
	require.ErrorIs(t, v.Scan(strings.NewReader("1")), vector.ErrNilVector)
}

// TestScanNaNPolicy ensures the numeric guard applies to textual input.
func TestScanNaNPolicy(t *testing.T) {
	strict := MustNew[float64](t, 2, 0, vector.WithValidateNaNInf())
	err := strict.Scan(strings.NewReader("1 +Inf"))
	require.ErrorIs(t, err, vector.ErrNaNInf)
	require.Equal(t, []float64{0, 0}, strict.Values())

	lax := MustNew[float64](t, 2, 0)
	require.NoError(t, lax.Scan(strings.NewReader("1 +Inf")))
	got, err := lax.At(1)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}
