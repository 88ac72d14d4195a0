// Package matrix provides the dense numeric container behind the network solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, no-copy
//     Row views and deterministic String output.
//   - Augment and MatVec for assembling and checking linear systems.
//   - Eliminate, an in-place Gauss–Jordan kernel with explicit pivoting
//     policy (PivotPartial by default) and tolerance (DefaultEpsilon).
//   - RoughlyEqual / IsRoughlyZero, the single tolerance rule used across the
//     module to decide that a resistance or a pivot is zero.
//
// All public routines return sentinel errors (errors.go) instead of panicking;
// option constructors panic on nonsensical values only.
package matrix
