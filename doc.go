// Package rowreduce reduces matrices of exact rationals to row echelon and
// reduced row echelon form.
//
// 🚀 What is rowreduce?
//
//	A small, exact Gauss–Jordan engine:
//		• Exact arithmetic: arbitrary-precision fractions, never float64
//		• Row primitives: swap, scale, add-a-multiple, in place
//		• RowReduce: REF then RREF, reporting the leading ones
//		• Augmented systems: the constant column rides along but is never a pivot
//
// ✨ Why exact?
//
//   - Pivot choice and termination hinge on "is this entry zero?"
//   - With floats, 0.1*3 - 0.3 is not zero; with rationals it is
//
// Under the hood, everything is organized under two subpackages:
//
//	rational/ — Rat, the immutable exact fraction, and input coercion
//	matrix/   — Rational matrix, row operations, RowReduce, rendering
//
// Quick example:
//
//	m, _ := matrix.New([][]any{{2, 4}, {1, 3}})
//	m.RowReduce()
//	fmt.Print(m)
//	// [1 0]
//	// [0 1]
//
//	go get github.com/katalvlaran/rowreduce
package rowreduce
