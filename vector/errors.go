// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (possibly wrapped with a call-site tag) and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for easy grepping. Call sites wrap
// with fmt.Errorf("Vector.<Method>(...): %w", ErrX); errors.Is still matches.
//
// ERROR PRIORITY (enforced in tests):
// nil -> size/start -> index -> size mismatch -> numeric policy -> input format.

var (
	// ErrInvalidSize is returned when a requested length or start index is
	// negative or exceeds MaxSize. Nothing is allocated on this path.
	ErrInvalidSize = errors.New("vector: invalid size or start index")

	// ErrIndexOutOfRange indicates a position outside [StartIndex, StartIndex+Size).
	// At/Set MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates operands of a binary operation (Add/Sub/Dot)
	// have different lengths.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")

	// ErrMalformedInput signals that textual input ended early or held a token
	// that does not parse as the element type.
	ErrMalformedInput = errors.New("vector: malformed input")
)
