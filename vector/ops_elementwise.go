// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and vector arithmetic. Every operation allocates a fresh result and
//     never mutates its operands, so a failed call leaves both sides intact.
//   - Tight loops live in two private kernels (ewScalar, ewBinary) to avoid
//     duplicating the same for-range across five public methods.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; one allocation per result; O(n) time.

package vector

import "fmt"

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

// opsErrorf wraps an operand error with the operation name.
func opsErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// ewScalar computes out[i] = f(v[i], s) into a new vector with v's shape and policy.
func ewScalar[T Number](v *Vector[T], s T, f func(a, b T) T) *Vector[T] {
	out := &Vector[T]{start: v.start, data: make([]T, len(v.data)), opts: v.opts}
	for i, x := range v.data {
		out.data[i] = f(x, s)
	}

	return out
}

// ewBinary computes out[i] = f(a[i], b[i]) after a size check.
// The result keeps a's start index and policy.
func ewBinary[T Number](method string, a, b *Vector[T], f func(x, y T) T) (*Vector[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opsErrorf(method, err)
	}
	out := &Vector[T]{start: a.start, data: make([]T, len(a.data)), opts: a.opts}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}

func add[T Number](x, y T) T { return x + y }
func sub[T Number](x, y T) T { return x - y }
func mul[T Number](x, y T) T { return x * y }

// AddScalar returns a new vector with s added to every element.
func (v *Vector[T]) AddScalar(s T) *Vector[T] { return ewScalar(v, s, add[T]) }

// SubScalar returns a new vector with s subtracted from every element.
func (v *Vector[T]) SubScalar(s T) *Vector[T] { return ewScalar(v, s, sub[T]) }

// MulScalar returns a new vector with every element multiplied by s.
func (v *Vector[T]) MulScalar(s T) *Vector[T] { return ewScalar(v, s, mul[T]) }

// Add returns v + o elementwise.
//
// Errors: ErrSizeMismatch when sizes differ; ErrNilVector for a nil operand.
// The result keeps v's start index.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) { return ewBinary(ctxAdd, v, o, add[T]) }

// Sub returns v - o elementwise. Same contract as Add.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) { return ewBinary(ctxSub, v, o, sub[T]) }

// Dot returns Σ v[i]*o[i], accumulated from T's zero value in storage order.
//
// Errors: ErrSizeMismatch when sizes differ; ErrNilVector for a nil operand.
// Integer overflow wraps as usual for T.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var acc T
	if err := ValidateSameSize(v, o); err != nil {
		return acc, opsErrorf(ctxDot, err)
	}
	for i := range v.data {
		acc += v.data[i] * o.data[i]
	}

	return acc, nil
}
