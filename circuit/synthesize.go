// SPDX-License-Identifier: MIT

package circuit

// synthesize turns the solved unknowns of s back into node potentials and
// branch currents of the component n.
//
// The reference potential is exactly 0. Short-circuit currents are read from
// their unknowns; every other edge gets I[a][b] = (V[a] - V[b] + emf_ab) / R,
// computed once per edge and stored negated for the reverse direction.
func (s *system) synthesize(n *Network, x []float64) Solution {
	sol := newSolution(len(s.nodes) + 1)
	sol.Components = 1

	sol.Potentials[s.ref] = 0
	for i, id := range s.nodes {
		sol.Potentials[id] = x[i]
	}

	size := s.size()
	for k, sc := range s.shorts {
		sol.setCurrent(sc.First, sc.Second, x[size+k])
	}

	for a, row := range n.adj {
		for b, br := range row {
			if a > b {
				continue
			}
			if _, short := s.shortIx[pair{a, b}]; short {
				continue
			}
			i := (sol.Potentials[a] - sol.Potentials[b] + br.EMF) / br.Resistance
			sol.setCurrent(a, b, i)
		}
	}

	return sol
}
