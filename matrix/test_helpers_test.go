// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for reduction tests.
//   • Compare matrices through their rendered elements so failures print
//     readable fractions instead of big.Rat internals.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew builds a matrix or fails the test (fatal on error).
func MustNew(t *testing.T, grid [][]any, opts ...matrix.Option) *matrix.Rational {
	t.Helper()
	m, err := matrix.New(grid, opts...)
	require.NoError(t, err, "matrix.New")

	return m
}

// Ints lifts an int grid into the [][]any shape New expects.
func Ints(rows ...[]int) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = make([]any, len(r))
		for j, v := range r {
			out[i][j] = v
		}
	}

	return out
}

// Render returns the elements of m as strings ("1/2", "-3", "0").
func Render(m *matrix.Rational) [][]string {
	els := m.Elements()
	out := make([][]string, len(els))
	for i, row := range els {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}

	return out
}

// CompareGrid fails the test with a cmp diff when m's elements differ from want.
func CompareGrid(t *testing.T, want [][]string, m *matrix.Rational) {
	t.Helper()
	if diff := cmp.Diff(want, Render(m)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// AssertRREF checks the reduced-form invariants for the given pivots:
// pivot columns strictly increase with the pivot row, each pivot entry is 1,
// every other entry of a pivot column is 0, and rows below the last pivot
// are zero in the eligible columns.
func AssertRREF(t *testing.T, m *matrix.Rational, pivots []matrix.Pivot) {
	t.Helper()
	els := m.Elements()
	eligible := m.Cols()
	if m.Augmented() {
		eligible--
	}

	for k, p := range pivots {
		require.Equal(t, k, p.Row, "pivot %d must sit in row %d", k, k)
		require.Less(t, p.Col, eligible, "pivot %d in ineligible column", k)
		if k > 0 {
			require.Greater(t, p.Col, pivots[k-1].Col, "pivot columns must strictly increase")
		}
		for i := range els {
			v := els[i][p.Col]
			if i == p.Row {
				require.True(t, v.IsOne(), "pivot (%d,%d) = %s, want 1", p.Row, p.Col, v)
				continue
			}
			require.True(t, v.IsZero(), "entry (%d,%d) = %s, want 0 in pivot column", i, p.Col, v)
		}
		// entries left of a leading one are zero
		for j := 0; j < p.Col; j++ {
			require.True(t, els[p.Row][j].IsZero(), "entry (%d,%d) left of leading one", p.Row, j)
		}
	}
	for i := len(pivots); i < len(els); i++ {
		for j := 0; j < eligible; j++ {
			require.True(t, els[i][j].IsZero(), "non-pivot row %d has nonzero coefficient at column %d", i, j)
		}
	}
}
