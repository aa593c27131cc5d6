// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels wrapped with an operation
// tag (see matrixErrorf); tests MUST check them via errors.Is.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Element coercion failures are NOT redeclared
// here: they surface as rational.ErrInvalidValue wrapped with the element
// position, so callers match the rational sentinel directly.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> ragged rows -> element value -> index range.

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid:
	// zero rows, zero columns, or an augmented matrix with a single column.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged indicates that the input grid is not rectangular.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Rational was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
