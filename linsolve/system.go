// SPDX-License-Identifier: MIT

package linsolve

import (
	"github.com/katalvlaran/resnet/matrix"
)

// Equation holds the coefficients of one linear equation followed by its
// free term: {a0, a1, ..., an-1, b} stands for a0·x0 + ... + an-1·xn-1 = b.
type Equation []float64

// System accumulates equations over a fixed number of unknowns.
// The zero value is not usable; create one with NewSystem.
type System struct {
	vars int
	eqs  []Equation
	opts []Option
}

// NewSystem creates an empty system in vars unknowns. Options are applied
// by Solve and TrySolve.
func NewSystem(vars int, opts ...Option) *System {
	return &System{vars: vars, opts: opts}
}

// Push appends a copy of eq. The equation must carry exactly Vars()+1 values.
func (s *System) Push(eq Equation) error {
	if len(eq) != s.vars+1 {
		return solverErrorf(opPush, ErrDimensionMismatch)
	}
	s.eqs = append(s.eqs, append(Equation(nil), eq...))

	return nil
}

// Len returns the number of equations pushed so far.
func (s *System) Len() int { return len(s.eqs) }

// Vars returns the number of unknowns.
func (s *System) Vars() int { return s.vars }

// Extended builds the extended matrix, one row per equation in push order.
func (s *System) Extended() (*matrix.Dense, error) {
	if s.vars < 1 {
		return nil, solverErrorf(opExtended, ErrDimensionMismatch)
	}
	if len(s.eqs) < s.vars {
		return nil, solverErrorf(opExtended, ErrUnderdeterminedSystem)
	}
	rows := make([][]float64, len(s.eqs))
	for i, eq := range s.eqs {
		rows[i] = eq
	}
	ext, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, solverErrorf(opExtended, err)
	}

	return ext, nil
}

// Solve returns the unique solution of the system, failing with the same
// errors as SolveExtended.
func (s *System) Solve() ([]float64, error) {
	ext, err := s.Extended()
	if err != nil {
		return nil, err
	}

	return SolveExtended(ext, s.opts...)
}

// TrySolve is Solve for callers that only care whether a unique solution
// exists: ok is false on any failure.
func (s *System) TrySolve() (x []float64, ok bool) {
	x, err := s.Solve()
	if err != nil {
		return nil, false
	}

	return x, true
}
