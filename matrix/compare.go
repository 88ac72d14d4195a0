// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// RoughlyEqual reports whether a and b agree within eps, using an absolute
// bound near zero and a relative bound for large magnitudes:
//
//	|a-b| <= eps * max(1, |a|, |b|)
//
// NaN never compares equal. Equal infinities compare equal.
// Complexity: O(1).
func RoughlyEqual[T constraints.Float](a, b, eps T) bool {
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) || math.IsInf(fa, 0) || math.IsInf(fb, 0) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))

	return math.Abs(fa-fb) <= float64(eps)*scale
}

// IsRoughlyZero is RoughlyEqual(v, 0, eps); with the unit floor it reduces
// to |v| <= eps.
func IsRoughlyZero[T constraints.Float](v, eps T) bool {
	return RoughlyEqual(v, 0, eps)
}
