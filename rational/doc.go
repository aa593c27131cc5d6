// SPDX-License-Identifier: MIT

// Package rational provides Rat, an immutable exact rational number used as
// the element type of row-reduced matrices.
//
// 🚀 Why exact rationals?
//
//	Row reduction decides pivots and termination by asking "is this entry
//	zero?". With float64 that question is answered after rounding, so a
//	pivot of 1e-17 can be chosen where the true value is 0. Rat keeps an
//	arbitrary-precision numerator/denominator pair in lowest terms, and
//	IsZero is an exact test.
//
// ✨ Key features:
//   - lowest terms with a positive denominator after every operation
//   - the zero value Rat{} is the number 0, ready to use
//   - New accepts Go integers, floats, strings ("3/4", "1.25", "1e-3"),
//     *big.Int and *big.Rat
//   - floats are approximated by the closest fraction whose denominator
//     does not exceed DefaultMaxDenominator (0.1 → 1/10)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rowreduce/rational"
//
//	a := rational.MustNew("3/4")
//	b, err := rational.New(0.25)
//	if err != nil {
//	  // errors.Is(err, rational.ErrInvalidValue)
//	}
//	fmt.Println(a.Add(b)) // 1
//
// Errors:
//
//   - ErrInvalidValue   — NaN, ±Inf, malformed strings, nil pointers, unsupported types.
//   - ErrDivisionByZero — Inv/Quo of zero, or a zero denominator in FromFrac.
//   - ErrBadDenominatorLimit — a non-positive denominator bound.
package rational
