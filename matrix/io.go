// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Textual read/write built on the vector format: each row is written as a
//     vector followed by a line break; reading consumes the rows in order.

package matrix

import (
	"io"
	"strings"

	"github.com/katalvlaran/utmatrix/vector"
)

const (
	ctxScan    = "Scan"
	ctxWriteTo = "WriteTo"
)

var _ io.WriterTo = (*Triangular[int])(nil)

// Scan reads every row in order from r (row i takes n-i values).
// MAIN DESCRIPTION:
//   - One shared RuneScanner feeds all rows, so tokens may be laid out on any
//     lines; newlines are plain whitespace.
//
// Implementation:
//   - Stage 1: scan into cloned rows.
//   - Stage 2: swap the clones in once every row succeeded.
//
// Errors:
//   - ErrNilVector for a nil receiver; the row's ErrMalformedInput/ErrNaNInf
//     otherwise, tagged with the row index. m is unchanged on error.
func (m *Triangular[T]) Scan(r io.Reader) error {
	if m == nil {
		return opsErrorf(ctxScan, ErrNilVector)
	}
	rs := vector.AsRuneScanner(r)
	staged := m.Rows()
	for i, row := range staged {
		if err := row.Scan(rs); err != nil {
			return matrixErrorf(ctxScan, i, row.StartIndex(), err)
		}
	}
	m.rows = staged

	return nil
}

// WriteTo writes every row followed by "\n" and reports the bytes written.
func (m *Triangular[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	if err != nil {
		return int64(n), opsErrorf(ctxWriteTo, err)
	}

	return int64(n), nil
}

// String renders the matrix one row per line, e.g. "1 3 \n5 \n".
// Each row prints only its stored (upper) part.
func (m *Triangular[T]) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}

	return b.String()
}
