// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations and column/row searches.
//
// Each public method validates its indices and then delegates to an
// unchecked kernel (swap, scale, addMultiple, ...). RowReduce calls the
// kernels directly because its loop bounds already guarantee valid indices.

package matrix

import "github.com/katalvlaran/rowreduce/rational"

// SwapRows exchanges rows i and j. No-op when i == j.
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(1).
func (m *Rational) SwapRows(i, j int) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := m.validateRow(i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := m.validateRow(j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	m.swap(i, j)

	return nil
}

// ScaleRow multiplies every element of row i by s. Scaling by zero is
// permitted and zeroes the row.
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(cols).
func (m *Rational) ScaleRow(i int, s rational.Rat) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	if err := m.validateRow(i); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	m.scale(i, s)

	return nil
}

// AddRowMultiple performs target[k] += source[k]*s for every column k.
// target == source is allowed and multiplies the row by (1+s).
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(cols).
func (m *Rational) AddRowMultiple(target, source int, s rational.Rat) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opAddRowMultiple, err)
	}
	if err := m.validateRow(target); err != nil {
		return matrixErrorf(opAddRowMultiple, err)
	}
	if err := m.validateRow(source); err != nil {
		return matrixErrorf(opAddRowMultiple, err)
	}
	m.addMultiple(target, source, s)

	return nil
}

// FindFirstNonZeroColumn scans columns left to right, and rows top to bottom
// within each column, and returns the first column holding a nonzero entry.
// Returns NoIndex for the zero matrix.
// Complexity: O(rows*cols) worst case.
func (m *Rational) FindFirstNonZeroColumn() int {
	return m.firstNonZeroColumn(m.cols)
}

// IsColumnZeroBelow reports whether every entry of column col at row index
// ≥ fromRow is exactly zero. fromRow may equal Rows(), giving true.
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(rows).
func (m *Rational) IsColumnZeroBelow(col, fromRow int) (bool, error) {
	if err := validateNotNil(m); err != nil {
		return false, matrixErrorf(opIsColumnZero, err)
	}
	if err := m.validateCol(col); err != nil {
		return false, matrixErrorf(opIsColumnZero, err)
	}
	if err := m.validateFromRow(fromRow); err != nil {
		return false, matrixErrorf(opIsColumnZero, err)
	}

	return m.nonZeroRow(fromRow, col) == NoIndex, nil
}

// FindNonZeroRow returns the first row at or below fromRow with a nonzero
// entry in column col, or NoIndex if there is none.
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(rows).
func (m *Rational) FindNonZeroRow(fromRow, col int) (int, error) {
	if err := validateNotNil(m); err != nil {
		return NoIndex, matrixErrorf(opFindNonZeroRow, err)
	}
	if err := m.validateCol(col); err != nil {
		return NoIndex, matrixErrorf(opFindNonZeroRow, err)
	}
	if err := m.validateFromRow(fromRow); err != nil {
		return NoIndex, matrixErrorf(opFindNonZeroRow, err)
	}

	return m.nonZeroRow(fromRow, col), nil
}

// ---------- unchecked kernels ----------

func (m *Rational) swap(i, j int) {
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

func (m *Rational) scale(i int, s rational.Rat) {
	row := m.data[i]
	for k := range row {
		row[k] = row[k].Mul(s)
	}
}

// addMultiple reads source[k] before writing target[k] at the same k, so
// target == source is well defined.
func (m *Rational) addMultiple(target, source int, s rational.Rat) {
	dst, src := m.data[target], m.data[source]
	for k := range dst {
		dst[k] = dst[k].Add(src[k].Mul(s))
	}
}

// firstNonZeroColumn searches columns [0, limit).
func (m *Rational) firstNonZeroColumn(limit int) int {
	var i, j int
	for j = 0; j < limit; j++ {
		for i = 0; i < m.rows; i++ {
			if !m.data[i][j].IsZero() {
				return j
			}
		}
	}

	return NoIndex
}

func (m *Rational) nonZeroRow(fromRow, col int) int {
	for i := fromRow; i < m.rows; i++ {
		if !m.data[i][col].IsZero() {
			return i
		}
	}

	return NoIndex
}
