// Package matrix reduces matrices of exact rationals to row echelon form.
//
// The matrix package provides:
//
//   - Rational, a mutable rows×cols grid of rational.Rat built from Go
//     integers, floats, fraction strings or decimal strings (New).
//   - Elementary row operations (SwapRows, ScaleRow, AddRowMultiple) and the
//     searches elimination needs (FindFirstNonZeroColumn, IsColumnZeroBelow,
//     FindNonZeroRow).
//   - RowReduce, which turns the matrix into reduced row echelon form in
//     place and reports the leading-one positions.
//   - An augmented mode (WithAugmented) in which the last column is the
//     constant column of a linear system: it is never a pivot column but is
//     carried through every row operation.
//
// All arithmetic is exact, so zero tests during pivot selection are exact
// too. A *Rational is owned by one caller and is not safe for concurrent use.
//
//	m, _ := matrix.New([][]any{{1, 1, 3}, {2, 2, 6}}, matrix.WithAugmented())
//	m.RowReduce()
//	fmt.Print(m)
//	// [1 1 | 3]
//	// [0 0 | 0]
//
// See the examples in this package for more usage patterns.
package matrix
