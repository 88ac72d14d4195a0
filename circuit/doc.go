// Package circuit computes steady-state node potentials and branch currents
// of DC networks made of resistors and ideal EMF sources.
//
// What & Why
//
//   - A network is an undirected graph: nodes are non-negative integer ids,
//     every edge carries a resistance R ≥ 0 and an EMF acting from its first
//     to its second endpoint. Inserting b -- a with EMF E is the same edge as
//     a -- b with EMF -E.
//   - Edges with (roughly) zero resistance are short circuits. Ohm's law does
//     not give their current, so each one becomes an extra unknown with the
//     constraint V[first] - V[second] = -E.
//
// Pipeline (Network.Solve)
//
//  1. ConnectedComponents: union-find (package dsu) over the node ids.
//  2. Per component: the minimum id is grounded (V = 0), KCL is written at
//     every other node, one constraint row per short circuit.
//  3. The extended matrix is solved by package linsolve (Gauss–Jordan with
//     singularity detection).
//  4. Potentials come from the unknowns; currents are
//     I[a][b] = (V[a] - V[b] + E_ab) / R, or the short-circuit unknowns.
//  5. Component solutions are merged into one Solution.
//
// Guarantees
//
//   - Every reference potential is exactly 0.
//   - Currents[a][b] == -Currents[b][a] exactly.
//   - Currents leaving any node sum to zero within tolerance.
//   - A network without a unique steady state (e.g. a loop of short circuits)
//     fails with linsolve.ErrSingularMatrix instead of returning a guess.
//   - Results do not depend on insertion order or map iteration order.
//
// Options: WithEpsilon (zero tolerance for resistances and pivots),
// WithPivoting (elimination policy), WithWorkers (components solved
// concurrently).
package circuit
