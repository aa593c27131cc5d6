// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep public methods minimal by delegating guards here.
//  - Return plain sentinel errors tagged with the validator name so call
//    sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the receiver is usable.
// Complexity: O(1).
func validateNotNil(m *Rational) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateShape checks rows/cols against the augmented policy.
// An augmented matrix needs at least one coefficient column besides the
// constant column.
// Complexity: O(1).
func validateShape(rows, cols int, augmented bool) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}
	if augmented && cols < 2 {
		return validatorErrorf("ValidateShape: augmented", ErrBadShape)
	}

	return nil
}

// validateGrid checks that grid has at least one non-empty row and that all
// rows share the first row's length. Returns the shape on success.
// Complexity: O(rows).
func validateGrid[T any](grid [][]T, augmented bool) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 {
		return 0, 0, validatorErrorf("ValidateGrid", ErrBadShape)
	}
	cols = len(grid[0])
	if err = validateShape(rows, cols, augmented); err != nil {
		return 0, 0, validatorErrorf("ValidateGrid", err)
	}
	for i := 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d columns, want %d", i, len(grid[i]), cols), ErrRagged)
		}
	}

	return rows, cols, nil
}

// validateRow ensures 0 ≤ i < Rows().
// Complexity: O(1).
func (m *Rational) validateRow(i int) error {
	if i < 0 || i >= m.rows {
		return validatorErrorf(fmt.Sprintf("ValidateRow(%d)", i), ErrOutOfRange)
	}

	return nil
}

// validateCol ensures 0 ≤ j < Cols().
// Complexity: O(1).
func (m *Rational) validateCol(j int) error {
	if j < 0 || j >= m.cols {
		return validatorErrorf(fmt.Sprintf("ValidateCol(%d)", j), ErrOutOfRange)
	}

	return nil
}

// validateFromRow accepts 0 ≤ i ≤ Rows(); i == Rows() denotes an empty tail.
// Complexity: O(1).
func (m *Rational) validateFromRow(i int) error {
	if i < 0 || i > m.rows {
		return validatorErrorf(fmt.Sprintf("ValidateFromRow(%d)", i), ErrOutOfRange)
	}

	return nil
}
