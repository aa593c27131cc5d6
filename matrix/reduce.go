// SPDX-License-Identifier: MIT
// Package matrix: Gauss–Jordan reduction to reduced row echelon form.
//
// Purpose:
//   - RowReduce is the facade; echelon (forward pass) and backSubstitute
//     (backward pass) are the kernels.
//
// Determinism:
//   - Pivot columns are taken leftmost-first and the pivot row is the first
//     nonzero row at or below the current pivot row. There is no magnitude
//     pivoting: arithmetic is exact, so any nonzero pivot is as good as another.

package matrix

import "go.uber.org/zap"

// Pivot is the position of a leading one in the reduced matrix.
type Pivot struct {
	Row int
	Col int
}

// RowReduce transforms m in place into reduced row echelon form and returns
// the leading-one positions in discovery order (top to bottom, so columns are
// strictly increasing). The number of pivots is the rank of the coefficient
// part of m.
//
// Implementation:
//   - Stage 1 (REF): for each eligible column from the first nonzero one,
//     skip it if it is zero from the pivot row down; otherwise bring the
//     first nonzero row up, scale it to a leading one, clear below, advance.
//   - Stage 2 (RREF): walk the pivots bottom-up and clear above each one.
//
// Behavior highlights:
//   - When m is augmented the last column is never a pivot column, but it is
//     transformed by every row operation.
//   - The zero matrix (within the eligible columns) is left untouched and
//     yields nil.
//   - Idempotent: reducing an RREF matrix changes nothing and returns the
//     same pivots.
//
// Errors:
//   - None. Scaling only ever uses a pivot already confirmed nonzero.
//
// Complexity:
//   - Time O(rows²·cols) rational operations, Space O(rank) extra.
func (m *Rational) RowReduce() []Pivot {
	pivots := m.echelon()
	if len(pivots) == 0 {
		m.log.Debug("row reduce: no pivot column", zap.Int("rows", m.rows), zap.Int("cols", m.cols))
		return nil
	}
	m.backSubstitute(pivots)
	m.log.Debug("row reduce: done", zap.Int("pivots", len(pivots)), zap.Bool("augmented", m.augmented))

	return pivots
}

// pivotLimit is one past the last column eligible for pivots.
func (m *Rational) pivotLimit() int {
	if m.augmented {
		return m.cols - 1
	}

	return m.cols
}

// echelon performs forward elimination to row echelon form with leading
// ones and returns the pivots in discovery order.
func (m *Rational) echelon() []Pivot {
	limit := m.pivotLimit()
	start := m.firstNonZeroColumn(limit)
	if start == NoIndex {
		return nil
	}

	var pivots []Pivot
	pivotRow := 0
	for c := start; c < limit && pivotRow < m.rows; c++ {
		r := m.nonZeroRow(pivotRow, c)
		if r == NoIndex {
			continue // no pivot in this column; pivotRow stays
		}
		if r != pivotRow {
			m.swap(pivotRow, r)
			m.log.Debug("swap", zap.Int("row", pivotRow), zap.Int("with", r))
		}

		lead := m.data[pivotRow][c]
		if !lead.IsOne() {
			inv, err := lead.Inv()
			if err != nil {
				panic("matrix: echelon: zero pivot after nonzero search")
			}
			m.scale(pivotRow, inv)
			m.log.Debug("scale", zap.Int("row", pivotRow), zap.Stringer("by", inv))
		}
		pivots = append(pivots, Pivot{Row: pivotRow, Col: c})

		for i := pivotRow + 1; i < m.rows; i++ {
			m.eliminate(i, pivotRow, c)
		}
		pivotRow++
	}

	return pivots
}

// backSubstitute clears every entry above each leading one, bottom pivot first.
func (m *Rational) backSubstitute(pivots []Pivot) {
	for p := len(pivots) - 1; p >= 0; p-- {
		pv := pivots[p]
		for i := pv.Row - 1; i >= 0; i-- {
			m.eliminate(i, pv.Row, pv.Col)
		}
	}
}

// eliminate zeroes m[target][col] using the leading one in row pivotRow.
// Rows whose entry is already zero are skipped; adding 0× a row is a no-op.
func (m *Rational) eliminate(target, pivotRow, col int) {
	factor := m.data[target][col]
	if factor.IsZero() {
		return
	}
	s := factor.Neg()
	m.addMultiple(target, pivotRow, s)
	m.log.Debug("add", zap.Int("row", target), zap.Int("from", pivotRow), zap.Stringer("times", s))
}
