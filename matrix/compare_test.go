// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/resnet/matrix"
	"github.com/stretchr/testify/assert"
)

func TestRoughlyEqual(t *testing.T) {
	const eps = 1e-9
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"exact", 1.5, 1.5, true},
		{"absolute near zero", 0, 5e-10, true},
		{"absolute miss near zero", 0, 2e-9, false},
		{"relative large", 1e12, 1e12 + 100, true},
		{"relative miss large", 1e12, 1e12 + 1e4, false},
		{"opposite sign", 1, -1, false},
		{"nan", math.NaN(), math.NaN(), false},
		{"equal inf", math.Inf(1), math.Inf(1), true},
		{"inf vs finite", math.Inf(1), 1e308, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, matrix.RoughlyEqual(tc.a, tc.b, eps), tc.name)
		assert.Equal(t, tc.want, matrix.RoughlyEqual(tc.b, tc.a, eps), tc.name+" (swapped)")
	}
}

func TestRoughlyEqualFloat32(t *testing.T) {
	assert.True(t, matrix.RoughlyEqual[float32](1, 1.0000001, 1e-6))
	assert.False(t, matrix.RoughlyEqual[float32](1, 1.01, 1e-6))
}

func TestIsRoughlyZero(t *testing.T) {
	assert.True(t, matrix.IsRoughlyZero(0.0, 0))
	assert.True(t, matrix.IsRoughlyZero(-1e-10, 1e-9))
	assert.False(t, matrix.IsRoughlyZero(1e-8, 1e-9))
	assert.False(t, matrix.IsRoughlyZero(1e-300, 0))
}
