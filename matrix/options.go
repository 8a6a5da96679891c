// SPDX-License-Identifier: MIT

// Package matrix: configuration. Row vectors carry the policy, so a matrix
// accepts the vector options unchanged and hands them to every row.
package matrix

import "github.com/katalvlaran/utmatrix/vector"

// Shape defaults and limits.
const (
	// DefaultSize is the dimension used by NewDefault.
	DefaultSize = 10

	// MaxSize bounds the dimension n of any matrix.
	MaxSize = 10000
)

// Option is the row-vector option type; see package vector for the setters.
type Option = vector.Option

// Re-exported setters, so typical callers import only this package.
var (
	WithValidateNaNInf   = vector.WithValidateNaNInf
	WithNoValidateNaNInf = vector.WithNoValidateNaNInf
	WithSeparator        = vector.WithSeparator
)
