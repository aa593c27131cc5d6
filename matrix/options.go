// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rational matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are consumed once, at construction. The resulting *Rational
//     keeps its augmented flag and logger for its whole lifetime.
//   - The denominator bound only affects float literals; integers, fraction
//     strings and decimal strings are always exact.
package matrix

import (
	"github.com/katalvlaran/rowreduce/rational"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAugmented controls whether the last column is the constant
	// column of a linear system. false ⇒ every column is a pivot candidate.
	DefaultAugmented = false

	// DefaultMaxDenominator bounds denominators produced from float literals.
	DefaultMaxDenominator = rational.DefaultMaxDenominator
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDenominatorInvalid = "matrix: WithMaxDenominator: bound must be >= 1"
	panicLoggerNil             = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	augmented      bool        // DefaultAugmented
	maxDenominator int64       // DefaultMaxDenominator
	logger         *zap.Logger // zap.NewNop() unless WithLogger
}

// WithAugmented marks the last column as the augmented (constant) column.
// It is excluded from pivot search in RowReduce but still takes part in
// every row operation, and String renders it behind a "|" separator.
func WithAugmented() Option {
	return func(o *Options) { o.augmented = true }
}

// WithNotAugmented treats every column as a coefficient column (default).
func WithNotAugmented() Option {
	return func(o *Options) { o.augmented = false }
}

// WithMaxDenominator sets the denominator bound used when coercing float
// literals (see rational.NewLimited).
// Panics with a stable message when n < 1.
//
// AI-Hints:
//   - Raise the bound when float inputs carry more than six significant
//     decimal places; prefer string literals ("0.1234567") for exact input.
func WithMaxDenominator(n int64) Option {
	if n < 1 {
		panic(panicMaxDenominatorInvalid)
	}

	return func(o *Options) { o.maxDenominator = n }
}

// WithLogger installs a zap logger that receives a Debug-level trace of every
// elementary row operation performed by RowReduce.
// Panics when l is nil; use zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		augmented:      DefaultAugmented,
		maxDenominator: DefaultMaxDenominator,
		logger:         zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
