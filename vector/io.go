// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Plain textual read/write: Size() whitespace-separated tokens, storage order,
//     start index not part of the format.
//   - Output writes every element followed by the separator (default one space)
//     and no trailing newline.
//
// Notes:
//   - Scan reads through an io.RuneScanner so that several vectors can be read
//     from one stream back to back without losing the rune after each token;
//     plain readers are wrapped in a bufio.Reader once.

package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	ctxScan    = "Scan"
	ctxWriteTo = "WriteTo"
)

// Compile-time assertion: *Vector writes itself as text.
var _ io.WriterTo = (*Vector[int])(nil)

// ScanReader is a reader that can push back one rune, which fmt.Fscan needs
// to stop exactly at the end of each token.
type ScanReader interface {
	io.Reader
	io.RuneScanner
}

// AsRuneScanner returns r itself when it already supports UnreadRune, otherwise
// a buffered wrapper. Callers reading several values from one stream must wrap
// once and reuse the result.
func AsRuneScanner(r io.Reader) ScanReader {
	if rs, ok := r.(ScanReader); ok {
		return rs
	}

	return bufio.NewReader(r)
}

// Scan reads exactly Size() values from r into positions StartIndex..StartIndex+Size-1.
// MAIN DESCRIPTION:
//   - Whitespace (spaces, tabs, newlines) separates tokens.
//
// Implementation:
//   - Stage 1: parse every token into a staging buffer.
//   - Stage 2: apply the numeric policy.
//   - Stage 3: commit the staging buffer into storage.
//
// Behavior highlights:
//   - Atomic: on any error v keeps its previous contents.
//
// Errors:
//   - ErrNilVector for a nil receiver.
//   - ErrMalformedInput when input ends early or a token does not parse (the
//     underlying scan error is wrapped too).
//   - ErrNaNInf when the numeric policy is on and a token is NaN/±Inf.
//
// Complexity:
//   - Time O(n), Space O(n) for the staging buffer.
func (v *Vector[T]) Scan(r io.Reader) error {
	if err := ValidateNotNil(v); err != nil {
		return opsErrorf(ctxScan, err)
	}
	rs := AsRuneScanner(r)
	staging := make([]T, len(v.data))
	for i := range staging {
		if _, err := fmt.Fscan(rs, &staging[i]); err != nil {
			return fmt.Errorf("Vector.%s(%d): %w: %w", ctxScan, v.start+i, ErrMalformedInput, err)
		}
		if v.opts.validateNaNInf && isNonFinite(staging[i]) {
			return vectorErrorf(ctxScan, v.start+i, ErrNaNInf)
		}
	}
	copy(v.data, staging)

	return nil
}

// WriteTo writes the textual form of v to w and reports the bytes written.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	if err != nil {
		return int64(n), opsErrorf(ctxWriteTo, err)
	}

	return int64(n), nil
}

// String renders every element followed by the separator, e.g. "1 2 3 ".
// Elements use the default %v formatting so Scan can parse them back.
func (v *Vector[T]) String() string {
	var b strings.Builder
	for _, x := range v.data {
		fmt.Fprint(&b, x)
		b.WriteString(v.opts.separator)
	}

	return b.String()
}
