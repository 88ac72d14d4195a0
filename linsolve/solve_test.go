// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/resnet/linsolve"
	"github.com/katalvlaran/resnet/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func column(t *testing.T, v ...float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(v))
	for i := range v {
		rows[i] = []float64{v[i]}
	}

	return mustRows(t, rows)
}

func requireSolution(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "x[%d]", i)
	}
}

var policies = []matrix.Pivoting{matrix.PivotPartial, matrix.PivotNone}

func TestSolveExtended_Regular(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			ext := mustRows(t, [][]float64{
				{1, 1, 1, 6},
				{0, 2, 5, -4},
				{2, 5, -1, 27},
			})
			before := ext.String()

			x, err := linsolve.SolveExtended(ext, linsolve.WithPivoting(p))
			require.NoError(t, err)
			requireSolution(t, []float64{5, 3, -2}, x)
			require.Equal(t, before, ext.String(), "input must stay untouched")

			r, err := linsolve.Residual(ext, x)
			require.NoError(t, err)
			for i := range r {
				require.InDelta(t, 0, r[i], tol)
			}
		})
	}
}

func TestSolve_SeparateColumn(t *testing.T) {
	coefs := mustRows(t, [][]float64{{1, 3, -2}, {3, 5, 6}, {2, 4, 3}})
	x, err := linsolve.Solve(coefs, column(t, 5, 7, 8))
	require.NoError(t, err)
	requireSolution(t, []float64{-15, 8, 2}, x)
}

func TestSolve_Homogeneous(t *testing.T) {
	coefs := mustRows(t, [][]float64{{-1, 2}, {2, 3}, {1, -2}})
	x, err := linsolve.Solve(coefs, column(t, 0, 0, 0))
	require.NoError(t, err)
	requireSolution(t, []float64{0, 0}, x)
}

func TestSolve_RedundantConsistent(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			coefs := mustRows(t, [][]float64{{1, 1, 1}, {0, -4, -10}, {0, 2, 5}, {2, 5, -1}})
			x, err := linsolve.Solve(coefs, column(t, 6, 8, -4, 27), linsolve.WithPivoting(p))
			require.NoError(t, err)
			requireSolution(t, []float64{5, 3, -2}, x)
		})
	}
}

func TestSolve_Inconsistent(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			coefs := mustRows(t, [][]float64{{1, 1, 1}, {0, 5, -10}, {0, 2, 5}, {2, 5, -1}})
			_, err := linsolve.Solve(coefs, column(t, 6, 8, -4, 27), linsolve.WithPivoting(p))
			require.ErrorIs(t, err, linsolve.ErrSingularMatrix)
		})
	}
}

func TestSolve_VanishedPivot(t *testing.T) {
	coefs := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := linsolve.Solve(coefs, column(t, 3, 6))
	require.ErrorIs(t, err, linsolve.ErrSingularMatrix)

	// Nearly dependent rows count as dependent under a coarse tolerance only.
	coefs = mustRows(t, [][]float64{{1, 1}, {1, 1 + 1e-7}})
	_, err = linsolve.Solve(coefs, column(t, 2, 2), linsolve.WithEpsilon(1e-6))
	require.ErrorIs(t, err, linsolve.ErrSingularMatrix)
	x, err := linsolve.Solve(coefs, column(t, 2, 2))
	require.NoError(t, err)
	require.InDelta(t, 2, x[0], 1e-6)
	require.InDelta(t, 0, x[1], 1e-6)
}

func TestSolve_ShapeErrors(t *testing.T) {
	coefs := mustRows(t, [][]float64{{1, 1}, {1, -1}})

	_, err := linsolve.Solve(coefs, mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)

	_, err = linsolve.Solve(coefs, column(t, 1, 2, 3))
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)

	wide := mustRows(t, [][]float64{{1, 1, 1}, {1, -1, 0}})
	_, err = linsolve.Solve(wide, column(t, 1, 2))
	require.ErrorIs(t, err, linsolve.ErrUnderdeterminedSystem)

	_, err = linsolve.SolveExtended(mustRows(t, [][]float64{{1, 1, 1, 1}}))
	require.ErrorIs(t, err, linsolve.ErrUnderdeterminedSystem)

	_, err = linsolve.SolveExtended(column(t, 1, 2))
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)

	_, err = linsolve.SolveExtended(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsolve.Solve(nil, column(t, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsolve.Residual(coefs, []float64{1, 2})
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)
}
