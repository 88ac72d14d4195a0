// SPDX-License-Identifier: MIT

package circuit

import (
	"github.com/katalvlaran/resnet/matrix"
)

// pair identifies an undirected edge by its endpoints, lower id first.
type pair [2]uint

func pairOf(a, b uint) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

// system is the assembled linear system of one connected component.
//
// Unknowns 0..size-1 are the potentials of the non-reference nodes in
// ascending id order; unknowns size..size+len(shorts)-1 are the currents of
// the short circuits in (First, Second) order, each flowing First→Second.
type system struct {
	ref     uint
	nodes   []uint
	index   map[uint]int
	shorts  []ShortCircuit
	shortIx map[pair]int
	ext     *matrix.Dense
}

func (s *system) size() int { return len(s.nodes) }

// assemble builds the extended matrix of a connected network.
//
// Implementation:
//   - Stage 1: Reference = minimum node id; index the remaining nodes and the
//     short circuits.
//   - Stage 2: One KCL row per non-reference node (currents leaving sum to 0):
//     resistive neighbor b adds 1/R on the diagonal, -1/R on b's column
//     (unless b is the reference) and -emf/R on the right-hand side; a short
//     circuit adds +1 in its current column at the lower endpoint, -1 at the
//     higher one.
//   - Stage 3: One row per short circuit: V[First] - V[Second] = -emf, with
//     reference columns omitted.
//
// Neighbors are visited in ascending id order, so the matrix is bit-for-bit
// reproducible.
//
// Errors: ErrEmptyNetwork.
//
// Complexity: O(E log V) fill plus O((V+S)²) allocation.
func (n *Network) assemble() (*system, error) {
	nodes := n.nodes()
	if len(nodes) == 0 {
		return nil, circuitErrorf(opAssemble, ErrEmptyNetwork)
	}

	s := &system{
		ref:     nodes[0],
		nodes:   nodes[1:],
		index:   make(map[uint]int, len(nodes)-1),
		shorts:  n.sortedShorts(),
		shortIx: make(map[pair]int, len(n.shorts)),
	}
	for i, id := range s.nodes {
		s.index[id] = i
	}
	size := s.size()
	for k, sc := range s.shorts {
		s.shortIx[pair{sc.First, sc.Second}] = size + k
	}

	unknowns := size + len(s.shorts)
	ext, err := matrix.NewDense(unknowns, unknowns+1)
	if err != nil {
		return nil, circuitErrorf(opAssemble, err)
	}
	rhs := unknowns

	var (
		row []float64
		g   float64
	)
	for i, id := range s.nodes {
		row, _ = ext.Row(i)
		for _, b := range n.neighbors(id) {
			br := n.adj[id][b]
			if col, short := s.shortIx[pairOf(id, b)]; short {
				if id < b {
					row[col]++
				} else {
					row[col]--
				}
				continue
			}
			g = 1 / br.Resistance
			row[i] += g
			if b != s.ref {
				row[s.index[b]] -= g
			}
			row[rhs] -= br.EMF * g
		}
	}

	for k, sc := range s.shorts {
		row, _ = ext.Row(size + k)
		if sc.First != s.ref {
			row[s.index[sc.First]] = 1
		}
		if sc.Second != s.ref {
			row[s.index[sc.Second]] = -1
		}
		row[rhs] = -sc.EMF
	}
	s.ext = ext

	return s, nil
}
