// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vectors. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Notes:
//   - Options are resolved once at construction and travel with the vector:
//     Clone, Assign and every arithmetic result inherit the source policy.
//   - The numeric policy only matters for float element types; integers can
//     never hold NaN/Inf, so the check is a no-op for them.
package vector

// ---------- Defaults (single source of truth) ----------

// Shape defaults and limits.
const (
	// DefaultSize is the length used by NewDefault.
	DefaultSize = 10

	// DefaultStartIndex is the start index used by NewDefault.
	DefaultStartIndex = 0

	// MaxSize bounds both the length and the start index of any vector.
	MaxSize = 100000000
)

// Numeric and formatting policy.
const (
	// DefaultValidateNaNInf toggles finite-value validation on Set and Scan.
	// Off by default: a vector stores whatever the element type can hold.
	DefaultValidateNaNInf = false

	// DefaultSeparator follows every element in textual output.
	DefaultSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const panicSeparatorEmpty = "vector: WithSeparator: separator must be non-empty"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool   // DefaultValidateNaNInf
	separator      string // DefaultSeparator
}

// WithValidateNaNInf enables strict finite-value validation.
//
// Behavior highlights:
//   - Set and Scan reject NaN and ±Inf with ErrNaNInf.
//   - Arithmetic results are not re-validated; they inherit the flag.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSeparator sets the string written after every element by WriteTo/String.
// Scan still splits on whitespace only, so non-whitespace separators produce
// output that is for display, not for reading back.
// Panics on an empty separator (elements would run together).
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.separator = sep }
}

// gatherOptions builds Options from defaults, then applies user setters in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		separator:      DefaultSeparator,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
