// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single source of truth for shape, index and numeric checks.
//  - Return sentinels wrapped with a validator tag so call sites stay short.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocation-free.

package vector

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape checks a requested (size, startIndex) pair against MaxSize.
//
// Errors: ErrInvalidSize when size or startIndex is negative or above MaxSize.
// Complexity: O(1).
func ValidateShape(size, startIndex int) error {
	if size < 0 || size > MaxSize {
		return validatorErrorf("ValidateShape: size", ErrInvalidSize)
	}
	if startIndex < 0 || startIndex > MaxSize {
		return validatorErrorf("ValidateShape: startIndex", ErrInvalidSize)
	}

	return nil
}

// ValidateNotNil ensures the vector reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil[T Number](v *Vector[T]) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameSize ensures a and b hold the same number of elements.
// Start indices are deliberately not part of the check.
//
// Errors: ErrNilVector if either is nil, ErrSizeMismatch on different lengths.
// Complexity: O(1).
func ValidateSameSize[T Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameSize", ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameSize", ErrSizeMismatch)
	}

	return nil
}

// validateIndex maps an external position to a storage offset.
// Valid positions are [start, start+size); the upper bound is exclusive.
func validateIndex(pos, start, size int) (int, error) {
	if pos < start || pos >= start+size {
		return 0, ErrIndexOutOfRange
	}

	return pos - start, nil
}

// isNonFinite reports whether x is NaN or ±Inf. Always false for integer T.
func isNonFinite[T Number](x T) bool {
	f := float64(x)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
