// SPDX-License-Identifier: MIT

package matrix

import "strings"

// AugmentSeparator is placed before the last element of each row when the
// matrix is augmented.
const AugmentSeparator = "|"

// String renders one bracketed row per line with space-separated elements:
//
//	[1 0 -1]
//	[0 1 2]
//
// Augmented matrices get a separator before the constant column:
//
//	[1 1 | 3]
//	[0 0 | 0]
//
// Complexity: O(rows*cols) for string construction.
func (m *Rational) String() string {
	return m.Format(" ")
}

// Format is String with a caller-chosen separator between elements.
func (m *Rational) Format(sep string) string {
	if m == nil {
		return "<nil>"
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(sep)
			}
			if m.augmented && j == m.cols-1 {
				b.WriteString(AugmentSeparator)
				b.WriteString(sep)
			}
			b.WriteString(m.data[i][j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
