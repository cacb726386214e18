// SPDX-License-Identifier: MIT

// Package residual: functional configuration for the diagnostic formatters.
//
// Design goals (shared across the library):
//   - Deterministic behavior: no global state; defaults are named constants.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical values (programmer
//     error), never on user data.

package residual

// DefaultMaxListedResiduals is the elision cutoff for the error report's
// residual section: when a block has at least this many residuals, valid
// entries are summarized instead of listed. Invalid entries are always
// listed, regardless of count. This is presentation policy only; it never
// affects validity verdicts.
const DefaultMaxListedResiduals = 50

// panic messages (no magic strings inline).
const panicMaxListedInvalid = "residual: WithMaxListedResiduals: n must be >= 1"

// Options holds the gathered formatter configuration. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	maxListedResiduals int
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// WithMaxListedResiduals sets the elision cutoff for the error report.
// Panics if n < 1 (a report that may list nothing is a programmer error).
func WithMaxListedResiduals(n int) Option {
	if n < 1 {
		panic(panicMaxListedInvalid)
	}

	return func(o *Options) { o.maxListedResiduals = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{maxListedResiduals: DefaultMaxListedResiduals}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
