// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix interface and the Pivoting enum;
// errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Pivoting selects how the elimination kernel chooses the pivot row of a column.
type Pivoting int

const (
	// PivotPartial picks the row with the largest magnitude entry in the column.
	PivotPartial Pivoting = iota

	// PivotNone picks the first row whose entry is not roughly zero. Rows are
	// still swapped when the natural pivot vanishes, so dependent rows sink
	// to the bottom.
	PivotNone
)

// String returns the config spelling of p ("partial" or "none").
func (p Pivoting) String() string {
	switch p {
	case PivotPartial:
		return pivotPartialName
	case PivotNone:
		return pivotNoneName
	default:
		return "unknown"
	}
}
