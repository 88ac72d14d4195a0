// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAugment   = "Augment"
	opMatVec    = "MatVec"
	opEliminate = "Eliminate"
)

// ZeroSum is the initial sum value for dot products and residuals.
const ZeroSum = 0.0

// matrixErrorf wraps err with an operation tag, keeping the cause reachable via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Augment builds the extended matrix [a | b] by concatenating columns.
// MAIN DESCRIPTION:
//   - Used to turn a coefficient matrix and a right-hand side into one
//     extended system.
//
// Implementation:
//   - Stage 1: Validate both non-nil and with equal row counts.
//   - Stage 2: Allocate r×(ca+cb) and copy row by row (fast path on *Dense).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; allocation errors from NewDense.
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	var i, j int
	if okA && okB {
		for i = 0; i < rows; i++ {
			dst := out.data[i*out.c : (i+1)*out.c]
			copy(dst[:ca], ad.data[i*ca:(i+1)*ca])
			copy(dst[ca:], bd.data[i*cb:(i+1)*cb])
		}

		return out, nil
	}

	// Fallback: generic interface version.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < ca; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			out.data[i*out.c+j] = v
		}
		for j = 0; j < cb; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			out.data[i*out.c+ca+j] = v
		}
	}

	return out, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	var (
		i, j int
		sum  float64
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			row := d.data[i*cols : (i+1)*cols]
			for j = 0; j < cols; j++ {
				sum += row[j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
