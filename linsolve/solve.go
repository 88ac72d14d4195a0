// SPDX-License-Identifier: MIT

package linsolve

import (
	"github.com/katalvlaran/resnet/matrix"
)

// SolveExtended solves the system whose extended matrix is ext = [A | b]
// (r rows, n+1 columns, free terms in the last column) and returns x with A·x = b.
//
// Implementation:
//   - Stage 1: Validate ext (non-nil, at least one unknown, r ≥ n).
//   - Stage 2: Reduce a private copy of ext with matrix.Dense.Eliminate over
//     the n coefficient columns. ext itself is never modified.
//   - Stage 3: rank < n means some pivot vanished → ErrSingularMatrix.
//   - Stage 4: Every row past the n-th has zero coefficients now; its free
//     term must be roughly zero too, else the equations contradict each other.
//   - Stage 5: x[i] = rhs[i] / pivot[i].
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch (no coefficient column),
//     ErrUnderdeterminedSystem, ErrSingularMatrix.
//
// Complexity:
//   - Time O(r·n·(n+1)), Space O(r·(n+1)) for the working copy.
func SolveExtended(ext *matrix.Dense, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(ext); err != nil {
		return nil, solverErrorf(opSolveExtended, err)
	}
	rows, n := ext.Rows(), ext.Cols()-1
	if n < 1 {
		return nil, solverErrorf(opSolveExtended, ErrDimensionMismatch)
	}
	if rows < n {
		return nil, solverErrorf(opSolveExtended, ErrUnderdeterminedSystem)
	}
	eps := matrix.NewOptions(opts...).Epsilon()

	work := ext.CloneDense()
	rank, err := work.Eliminate(n, opts...)
	if err != nil {
		return nil, solverErrorf(opSolveExtended, err)
	}
	if rank < n {
		return nil, solverErrorf(opSolveExtended, ErrSingularMatrix)
	}

	var (
		i   int
		row []float64
	)
	for i = n; i < rows; i++ {
		row, _ = work.Row(i)
		if !matrix.IsRoughlyZero(row[n], eps) {
			return nil, solverErrorf(opSolveExtended, ErrSingularMatrix)
		}
	}

	x := make([]float64, n)
	for i = 0; i < n; i++ {
		row, _ = work.Row(i)
		if matrix.IsRoughlyZero(row[i], eps) {
			return nil, solverErrorf(opSolveExtended, ErrSingularMatrix)
		}
		x[i] = row[n] / row[i]
	}

	return x, nil
}

// Solve solves coefs·x = col where col is a single column of free terms.
// It validates the operand shapes, concatenates [coefs | col] and delegates
// to SolveExtended; neither operand is modified.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch, ErrUnderdeterminedSystem,
// ErrSingularMatrix.
func Solve(coefs, col *matrix.Dense, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(coefs); err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	if err := matrix.ValidateNotNil(col); err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	if col.Cols() != 1 || coefs.Rows() != col.Rows() {
		return nil, solverErrorf(opSolve, ErrDimensionMismatch)
	}
	if coefs.Rows() < coefs.Cols() {
		return nil, solverErrorf(opSolve, ErrUnderdeterminedSystem)
	}

	ext, err := matrix.Augment(coefs, col)
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	return SolveExtended(ext, opts...)
}

// Residual returns A·x - b for the extended matrix ext = [A | b], one entry
// per equation. A solution returned by SolveExtended has a residual that is
// roughly zero in every row.
func Residual(ext *matrix.Dense, x []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(ext); err != nil {
		return nil, solverErrorf(opResidual, err)
	}
	if len(x) != ext.Cols()-1 {
		return nil, solverErrorf(opResidual, ErrDimensionMismatch)
	}
	xb := make([]float64, len(x)+1)
	copy(xb, x)
	xb[len(x)] = -1

	r, err := matrix.MatVec(ext, xb)
	if err != nil {
		return nil, solverErrorf(opResidual, err)
	}

	return r, nil
}
