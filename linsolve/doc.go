// Package linsolve solves dense linear systems by Gaussian elimination with
// explicit singularity detection.
//
// What & Why
//
//   - The network solver produces one square-or-taller system per connected
//     component. Taller systems are legitimate: redundant equations may be
//     present as long as they agree with the rest.
//   - linsolve reduces such a system to reduced row-echelon form, reads the
//     unique solution off the pivots and rejects every system that has none.
//
// Entry points
//
//   - SolveExtended(ext, opts...): ext is the extended matrix [A | b] with
//     the free terms in its last column.
//   - Solve(coefs, col, opts...): A and b as separate matrices.
//   - System / Equation: incremental builder over equations whose trailing
//     element is the free term, with a non-failing TrySolve.
//
// Failure modes
//
//   - ErrSingularMatrix: a vanished pivot (no unique solution), or a
//     redundant row whose free term disagrees (no solution at all).
//   - ErrUnderdeterminedSystem: fewer equations than unknowns.
//   - ErrDimensionMismatch: the free-term column is not a single column or
//     its height differs from the coefficient matrix.
//
// Numeric policy
//
//   - Pivot selection and tolerance come from matrix options, re-exported
//     here as WithPivoting / WithEpsilon. Partial pivoting is the default.
//
// Complexity: O(r·n²) time for r equations in n unknowns, O(r·n) space.
package linsolve
