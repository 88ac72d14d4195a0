// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/resnet/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultPivoting, o.Pivoting())
	require.Equal(t, matrix.PivotPartial, matrix.DefaultPivoting)
}

// 2) TestNewOptions_LastWriterWins ensures later setters override earlier ones.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithPivoting(matrix.PivotNone),
		matrix.WithEpsilon(1e-6),
	)
	require.Equal(t, 1e-6, o.Epsilon())
	require.Equal(t, matrix.PivotNone, o.Pivoting())
}

// 3) TestWithEpsilon_PanicsOnInvalid covers negative, NaN and Inf tolerances.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestWithPivoting_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { matrix.WithPivoting(matrix.Pivoting(7)) })
}

func TestParsePivoting(t *testing.T) {
	tests := []struct {
		in      string
		want    matrix.Pivoting
		wantErr bool
	}{
		{"", matrix.PivotPartial, false},
		{"partial", matrix.PivotPartial, false},
		{" NONE ", matrix.PivotNone, false},
		{"complete", matrix.PivotPartial, true},
	}
	for _, tc := range tests {
		got, err := matrix.ParsePivoting(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
	require.Equal(t, "none", matrix.PivotNone.String())
	require.Equal(t, "unknown", matrix.Pivoting(9).String())
}
