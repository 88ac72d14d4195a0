// SPDX-License-Identifier: MIT

// Package matrix - in-place Gauss–Jordan reduction.
//
// Purpose:
//   - Reduce the leading columns of a Dense to reduced row-echelon form while
//     carrying the trailing columns (right-hand sides) along.
//   - Keep pivot selection explicit (Pivoting) and tolerance-driven (eps).

package matrix

import "math"

// Eliminate reduces the first `cols` columns of m to reduced row-echelon form
// in place and returns the rank (number of pivots found).
// MAIN DESCRIPTION:
//   - Forward elimination AND back elimination in one sweep: every pivot
//     column ends with a single non-zero entry (the pivot itself), so each
//     pivot row can be read off as rhs/pivot without back-substitution.
//   - Columns at index >= cols are transformed with their rows but never
//     chosen as pivot columns; an extended system [A | b] is reduced by
//     calling Eliminate(A.Cols()).
//
// Implementation:
//   - Stage 1: Validate receiver and 0 ≤ cols ≤ Cols().
//   - Stage 2: For each column, pick the pivot row among the not-yet-used rows
//     (largest magnitude under PivotPartial, first roughly-non-zero under
//     PivotNone). A column without a pivot is skipped (row stays).
//   - Stage 3: Swap the pivot row up, clear the column in every other row.
//
// Behavior highlights:
//   - Pivots are NOT normalized to 1; callers divide by the pivot.
//   - Rows that are linear combinations of earlier rows end up (roughly)
//     zero in the leading columns and sink below the last pivot row.
//   - Entries cleared by elimination are written as exact zeros.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (cols outside [0, Cols()]).
//
// Determinism:
//   - Fixed column-major sweep; ties in PivotPartial keep the upper row.
//
// Complexity:
//   - Time O(r * cols * c), Space O(1).
//
// Notes:
//   - A pivot is treated as vanished when IsRoughlyZero(pivot, eps).
func (m *Dense) Eliminate(cols int, opts ...Option) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opEliminate, ErrNilMatrix)
	}
	if cols < 0 || cols > m.c {
		return 0, denseErrorf(opEliminate, m.r, cols, ErrOutOfRange)
	}
	o := gatherOptions(opts...)

	var (
		row, col, k, j int
		p              int
		pivot, f       float64
		best           float64
		pr, kr         []float64
	)
	for col = 0; col < cols && row < m.r; col++ {
		// Stage 2: pivot search below (and including) the current row.
		p = -1
		best = 0
		for k = row; k < m.r; k++ {
			v := math.Abs(m.data[k*m.c+col])
			if IsRoughlyZero(v, o.eps) {
				continue
			}
			if o.pivot == PivotNone {
				p = k
				break
			}
			if p < 0 || v > best {
				p, best = k, v
			}
		}
		if p < 0 {
			continue // no pivot in this column
		}

		// Stage 3: bring the pivot up and clear the column elsewhere.
		if p != row {
			m.swapRows(p, row)
		}
		pr = m.data[row*m.c : (row+1)*m.c]
		pivot = pr[col]
		for k = 0; k < m.r; k++ {
			if k == row {
				continue
			}
			kr = m.data[k*m.c : (k+1)*m.c]
			if kr[col] == 0 {
				continue
			}
			f = kr[col] / pivot
			for j = col + 1; j < m.c; j++ {
				kr[j] -= f * pr[j]
			}
			kr[col] = 0
		}
		row++
	}

	return row, nil
}
