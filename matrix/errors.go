// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The shape/index/size taxonomy is shared with package vector: the values below
// are the SAME sentinels, so errors.Is matches through either package name.
// Only conditions that exist solely at the matrix level get their own value.

package matrix

import (
	"errors"

	"github.com/katalvlaran/utmatrix/vector"
)

var (
	// ErrInvalidSize is returned when a requested dimension is negative or
	// exceeds MaxSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row outside [0, Size()) or a column outside
	// the row's stored range [i, Size()); in particular any j < i.
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates operands with different row counts (or a row
	// pair of different lengths).
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilVector indicates a nil matrix or a nil row.
	ErrNilVector = vector.ErrNilVector

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = vector.ErrNaNInf

	// ErrMalformedInput signals textual input that ended early or did not parse.
	ErrMalformedInput = vector.ErrMalformedInput
)

// ErrNotUpper indicates a source that does not describe an upper-triangular
// layout (a gonum lower TriDense, or rows reaching outside the upper triangle).
var ErrNotUpper = errors.New("matrix: not upper-triangular")
