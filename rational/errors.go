// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Every message is prefixed with "rational: ". Functions return these
// sentinels directly or wrapped with fmt.Errorf("...: %w", ErrX); callers
// match with errors.Is.

package rational

import "errors"

var (
	// ErrInvalidValue is returned when an input cannot be represented as a
	// finite rational: NaN, ±Inf, a malformed or zero-denominator string,
	// a nil pointer, or an unsupported Go type.
	ErrInvalidValue = errors.New("rational: invalid value")

	// ErrDivisionByZero is returned by Inv and Quo when the divisor is zero,
	// and by FromFrac when the denominator is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrBadDenominatorLimit is returned when a denominator bound < 1 is
	// requested for float approximation.
	ErrBadDenominatorLimit = errors.New("rational: denominator limit must be >= 1")
)
