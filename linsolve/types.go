// SPDX-License-Identifier: MIT

// Package linsolve defines sentinel errors and solver options.
package linsolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/resnet/matrix"
)

// ErrSingularMatrix indicates that the system has no unique solution: either a
// pivot vanished within tolerance, or a redundant equation is inconsistent.
var ErrSingularMatrix = errors.New("linsolve: singular matrix")

// ErrUnderdeterminedSystem indicates fewer equations than unknowns.
var ErrUnderdeterminedSystem = errors.New("linsolve: underdetermined system")

// ErrDimensionMismatch indicates malformed operand shapes: a free-term matrix
// with more than one column, row counts that differ, or an equation of the
// wrong length.
var ErrDimensionMismatch = errors.New("linsolve: dimension mismatch")

// Operation tags for error wrapping.
const (
	opSolve         = "Solve"
	opSolveExtended = "SolveExtended"
	opResidual      = "Residual"
	opPush          = "System.Push"
	opExtended      = "System.Extended"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Option configures the elimination policy. It is the matrix option type, so
// a resolved matrix configuration can be forwarded unchanged.
type Option = matrix.Option

// WithEpsilon sets the tolerance below which a pivot or a free term counts as
// zero. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option { return matrix.WithEpsilon(eps) }

// WithPivoting selects the pivot policy (matrix.PivotPartial or matrix.PivotNone).
func WithPivoting(p matrix.Pivoting) Option { return matrix.WithPivoting(p) }
