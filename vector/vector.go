// SPDX-License-Identifier: MIT

// Package vector - start-indexed storage & safe accessors.
//
// Purpose:
//   - Own one contiguous buffer of Size elements addressed through a caller-chosen
//     start offset: external position p maps to storage offset p - StartIndex.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep copies independent: Clone and Assign never share the buffer.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(1); Clone/Assign/Equal: O(n).

package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
)

// Number is the element type set: every built-in integer and float type.
// Zero values are additive identities, which Dot relies on.
type Number interface {
	constraints.Integer | constraints.Float
}

// vectorErrorf wraps an error with a uniform Vector context and the callsite position.
func vectorErrorf(method string, pos int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, pos, err)
}

// Vector is a fixed-length sequence of T addressed from a start index.
//   - start is the first valid external position.
//   - data holds exactly Size() elements; position p lives at data[p-start].
//   - opts is the resolved policy (numeric guard, output separator).
//
// The zero value is not usable; build vectors with New, NewDefault or FromSlice.
type Vector[T Number] struct {
	start int
	data  []T
	opts  Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New creates a zero-filled vector of the given size and start index.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate 0 ≤ size ≤ MaxSize and 0 ≤ startIndex ≤ MaxSize.
//   - Stage 2: allocate a zero-filled buffer and resolve options.
//
// Errors:
//   - ErrInvalidSize (nothing is allocated on this path).
//
// Complexity:
//   - Time O(size), Space O(size).
func New[T Number](size, startIndex int, opts ...Option) (*Vector[T], error) {
	if err := ValidateShape(size, startIndex); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d,%d): %w", ctxNew, size, startIndex, err)
	}

	return &Vector[T]{
		start: startIndex,
		data:  make([]T, size), // make() zero-fills deterministically
		opts:  gatherOptions(opts...),
	}, nil
}

// NewDefault creates a zero-filled vector of DefaultSize elements starting at
// DefaultStartIndex. The defaults are always valid, so it cannot fail.
func NewDefault[T Number](opts ...Option) *Vector[T] {
	return &Vector[T]{
		start: DefaultStartIndex,
		data:  make([]T, DefaultSize),
		opts:  gatherOptions(opts...),
	}
}

// FromSlice creates a vector holding a copy of values, starting at startIndex.
// The caller keeps ownership of values; later writes to it are not observed.
//
// Errors: ErrInvalidSize for a bad start index or too many values;
// ErrNaNInf when the numeric policy is on and values holds NaN/±Inf.
func FromSlice[T Number](values []T, startIndex int, opts ...Option) (*Vector[T], error) {
	v, err := New[T](len(values), startIndex, opts...)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		if v.opts.validateNaNInf && isNonFinite(x) {
			return nil, vectorErrorf(ctxSet, startIndex+i, ErrNaNInf)
		}
		v.data[i] = x
	}

	return v, nil
}

// Size returns the number of stored elements. No side effects.
func (v *Vector[T]) Size() int { return len(v.data) }

// StartIndex returns the first valid external position. No side effects.
func (v *Vector[T]) StartIndex() int { return v.start }

// At returns the element at external position pos.
//
// Errors:
//   - ErrIndexOutOfRange when pos is outside [StartIndex, StartIndex+Size).
//
// Complexity: O(1).
func (v *Vector[T]) At(pos int) (T, error) {
	off, err := validateIndex(pos, v.start, len(v.data))
	if err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, pos, err)
	}

	return v.data[off], nil
}

// Set stores x at external position pos.
//
// Errors:
//   - ErrIndexOutOfRange for bounds; ErrNaNInf when the numeric policy rejects x.
//
// Complexity: O(1).
func (v *Vector[T]) Set(pos int, x T) error {
	off, err := validateIndex(pos, v.start, len(v.data))
	if err != nil {
		return vectorErrorf(ctxSet, pos, err)
	}
	if v.opts.validateNaNInf && isNonFinite(x) {
		return vectorErrorf(ctxSet, pos, ErrNaNInf)
	}
	v.data[off] = x

	return nil
}

// Values returns a copy of the storage in position order (start index dropped).
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy: new buffer, same size, start index and policy.
// Mutations of either vector are never observed by the other.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	cp := make([]T, len(v.data))
	copy(cp, v.data)

	return &Vector[T]{start: v.start, data: cp, opts: v.opts}
}

// Equal reports whether v and o hold the same number of elements with equal
// values at every storage position. Start indices are not compared.
// Two nil vectors are equal; nil never equals a non-nil vector.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v == o {
		return true
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }

// Assign replaces v's contents with a deep copy of o.
// MAIN DESCRIPTION:
//   - Value-semantics assignment for a pointer type.
//
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: reallocate storage only when sizes differ.
//   - Stage 3: overwrite start index and policy, then copy elements.
//
// Errors:
//   - ErrNilVector when v or o is nil; v is left untouched.
//
// Complexity:
//   - Time O(n), Space O(n) only on reallocation.
func (v *Vector[T]) Assign(o *Vector[T]) error {
	if v == nil || o == nil {
		return vectorErrorf(ctxAssign, 0, ErrNilVector)
	}
	if v == o {
		return nil
	}
	if len(v.data) != len(o.data) {
		v.data = make([]T, len(o.data))
	}
	v.start = o.start
	v.opts = o.opts
	copy(v.data, o.data)

	return nil
}
