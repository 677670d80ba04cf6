// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for Dense construction.
//
// Purpose:
//   - Option / Options (functional options with internal state),
//   - Default* constants as the single source of truth,
//   - gatherOptions to resolve the effective policy for constructors.
//
// Policy:
//   - The library stores any float64 by default (NaN and ±Inf included).
//     Callers that ingest untrusted data opt into WithValidateNaNInf.
//   - The policy is per-instance and travels with Clone. Kernel results
//     (Add, Mul, ...) are created with the package defaults.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply.
	DefaultValidateNaNInf = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, Set and Apply reject NaN and ±Inf with ErrNaNInf, and
// NewDenseFrom rejects non-finite source values.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts on top of the defaults in order; nil entries are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
