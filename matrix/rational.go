// SPDX-License-Identifier: MIT
// Package matrix: Rational is a mutable rows×cols grid of exact rationals.
//
// Storage is a slice of row slices rather than the flat row-major buffer a
// float kernel would use: row swaps are the hot operation of elimination
// and exchanging two slice headers is O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/rational"
	"go.uber.org/zap"
)

// Operation name constants for unified error wrapping.
const (
	opNew            = "New"
	opNewFromRats    = "NewFromRats"
	opNewZero        = "NewZero"
	opAt             = "At"
	opSet            = "Set"
	opRow            = "Row"
	opSwapRows       = "SwapRows"
	opScaleRow       = "ScaleRow"
	opAddRowMultiple = "AddRowMultiple"
	opIsColumnZero   = "IsColumnZeroBelow"
	opFindNonZeroRow = "FindNonZeroRow"
)

// NoIndex is returned by the search helpers when nothing matches.
const NoIndex = -1

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Rational is a rectangular matrix of rational.Rat values.
// The zero value is not usable; build one with New, NewFromRats or NewZero.
//
// A *Rational is owned by a single caller: methods mutate it in place and
// it is not safe for concurrent use.
type Rational struct {
	rows, cols int
	augmented  bool
	data       [][]rational.Rat // len(data) == rows, len(data[i]) == cols
	log        *zap.Logger
}

// New builds a matrix from a grid of numeric literals, coercing each through
// rational.NewLimited with the configured denominator bound.
// Stage 1 (Validate): non-empty, rectangular, augmented needs ≥ 2 columns.
// Stage 2 (Convert): coerce every element; the first failure aborts.
// Stage 3 (Finalize): return the matrix. The input grid is not retained.
//
// Errors:
//   - ErrBadShape, ErrRagged.
//   - rational.ErrInvalidValue wrapped with the element position.
//
// Complexity: O(rows*cols) conversions.
func New(grid [][]any, opts ...Option) (*Rational, error) {
	o := gatherOptions(opts...)
	rows, cols, err := validateGrid(grid, o.augmented)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	data := make([][]rational.Rat, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		data[i] = make([]rational.Rat, cols)
		for j = 0; j < cols; j++ {
			data[i][j], err = rational.NewLimited(grid[i][j], o.maxDenominator)
			if err != nil {
				return nil, matrixErrorf(opNew, fmt.Errorf("element (%d,%d): %w", i, j, err))
			}
		}
	}

	return newRational(rows, cols, data, o), nil
}

// NewFromRats builds a matrix from already-exact values. The grid is copied.
//
// Errors: ErrBadShape, ErrRagged.
// Complexity: O(rows*cols).
func NewFromRats(grid [][]rational.Rat, opts ...Option) (*Rational, error) {
	o := gatherOptions(opts...)
	rows, cols, err := validateGrid(grid, o.augmented)
	if err != nil {
		return nil, matrixErrorf(opNewFromRats, err)
	}

	data := make([][]rational.Rat, rows)
	for i := range grid {
		data[i] = append([]rational.Rat(nil), grid[i]...)
	}

	return newRational(rows, cols, data, o), nil
}

// NewZero creates a rows×cols matrix of zeros.
//
// Errors: ErrBadShape.
// Complexity: O(rows*cols).
func NewZero(rows, cols int, opts ...Option) (*Rational, error) {
	o := gatherOptions(opts...)
	if err := validateShape(rows, cols, o.augmented); err != nil {
		return nil, matrixErrorf(opNewZero, err)
	}

	data := make([][]rational.Rat, rows)
	for i := range data {
		data[i] = make([]rational.Rat, cols) // Rat{} is 0
	}

	return newRational(rows, cols, data, o), nil
}

func newRational(rows, cols int, data [][]rational.Rat, o Options) *Rational {
	return &Rational{rows: rows, cols: cols, augmented: o.augmented, data: data, log: o.logger}
}

// Rows returns the number of rows.
func (m *Rational) Rows() int { return m.rows }

// Cols returns the number of columns, the augmented column included.
func (m *Rational) Cols() int { return m.cols }

// Augmented reports whether the last column is the constant column.
func (m *Rational) Augmented() bool { return m.augmented }

// At returns the element at (row, col).
// Returns ErrOutOfRange for invalid indices, ErrNilMatrix for a nil receiver.
// Complexity: O(1).
func (m *Rational) At(row, col int) (rational.Rat, error) {
	if err := validateNotNil(m); err != nil {
		return rational.Rat{}, matrixErrorf(opAt, err)
	}
	if err := m.validateRow(row); err != nil {
		return rational.Rat{}, matrixErrorf(opAt, err)
	}
	if err := m.validateCol(col); err != nil {
		return rational.Rat{}, matrixErrorf(opAt, err)
	}

	return m.data[row][col], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange for invalid indices, ErrNilMatrix for a nil receiver.
// Complexity: O(1).
func (m *Rational) Set(row, col int, v rational.Rat) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opSet, err)
	}
	if err := m.validateRow(row); err != nil {
		return matrixErrorf(opSet, err)
	}
	if err := m.validateCol(col); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[row][col] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(cols).
func (m *Rational) Row(i int) ([]rational.Rat, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if err := m.validateRow(i); err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	return append([]rational.Rat(nil), m.data[i]...), nil
}

// Elements returns a deep copy of the grid in row order. Rat values are
// immutable, so copying the slices is enough to decouple the result.
// Complexity: O(rows*cols).
func (m *Rational) Elements() [][]rational.Rat {
	out := make([][]rational.Rat, m.rows)
	for i := range m.data {
		out[i] = append([]rational.Rat(nil), m.data[i]...)
	}

	return out
}

// Clone returns an independent copy sharing only the logger.
// Complexity: O(rows*cols).
func (m *Rational) Clone() *Rational {
	return &Rational{rows: m.rows, cols: m.cols, augmented: m.augmented, data: m.Elements(), log: m.log}
}

// Equal reports whether m and other have the same shape, the same augmented
// flag and exactly equal elements.
// Complexity: O(rows*cols).
func (m *Rational) Equal(other *Rational) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || m.augmented != other.augmented {
		return false
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if !m.data[i][j].Equal(other.data[i][j]) {
				return false
			}
		}
	}

	return true
}
