// SPDX-License-Identifier: MIT
// Package vector — public API facades.
//
// Purpose:
//   - Thin package-level entry points for callers that prefer functions over
//     methods (e.g. when passing operations around as values).
//   - Each facade delegates to the canonical method; no logic is duplicated.

package vector

// Sum is an alias for a.Add(b): elementwise a + b.
// Complexity: O(n).
func Sum[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opsErrorf(ctxAdd, err)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b): elementwise a − b.
// Complexity: O(n).
func Diff[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opsErrorf(ctxSub, err)
	}

	return a.Sub(b)
}

// DotProduct is an alias for a.Dot(b).
// Complexity: O(n).
func DotProduct[T Number](a, b *Vector[T]) (T, error) {
	if err := ValidateNotNil(a); err != nil {
		var zero T
		return zero, opsErrorf(ctxDot, err)
	}

	return a.Dot(b)
}

// CloneVector returns a deep copy of v, or nil for a nil input.
func CloneVector[T Number](v *Vector[T]) *Vector[T] {
	if v == nil {
		return nil
	}

	return v.Clone()
}
