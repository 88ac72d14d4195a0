// SPDX-License-Identifier: MIT

package circuit

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/resnet/matrix"
)

// Network is an undirected resistor network keyed by node id.
//
// Every edge is stored in both directions, {a→b: (R, E)} and {b→a: (R, -E)},
// so Branch(a, b) and Branch(b, a) describe the same edge from either end.
// Edges whose resistance is roughly zero are also recorded as short circuits.
//
// A Network is safe for concurrent use: mutations take the write lock,
// queries and Solve take the read lock.
type Network struct {
	mu     sync.RWMutex
	adj    map[uint]map[uint]Branch
	shorts []ShortCircuit
	edges  int
	opts   Options
}

// NewNetwork creates an empty network. Options set the tolerance used for
// short-circuit detection and the solver policy used by Solve.
func NewNetwork(opts ...Option) *Network {
	return &Network{
		adj:  make(map[uint]map[uint]Branch),
		opts: gatherOptions(opts...),
	}
}

// Options returns the resolved configuration.
func (n *Network) Options() Options { return n.opts }

// Insert adds the edge first -- second with the given resistance and an emf
// acting from first to second.
//
// Implementation:
//   - Stage 1: Reject self-loops and non-finite or negative values.
//   - Stage 2: Orient the edge so that first < second (emf negated on swap).
//   - Stage 3: Reject a pair that already has an edge.
//   - Stage 4: Store both directions; record a short circuit when the
//     resistance is roughly zero.
//
// Errors: ErrSelfLoop, ErrInvalidResistance, ErrInvalidEMF, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (n *Network) Insert(first, second uint, resistance, emf float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := n.insert(first, second, resistance, emf)

	return err
}

// TryInsert is Insert that silently keeps the existing edge when the pair is
// already present. It still rejects self-loops and invalid values. The
// boolean reports whether the edge was added.
func (n *Network) TryInsert(first, second uint, resistance, emf float64) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	added, err := n.insert(first, second, resistance, emf)
	if err != nil && !errors.Is(err, ErrDuplicateEdge) {
		return false, err
	}

	return added, nil
}

// AddEdge is Insert for an Edge value.
func (n *Network) AddEdge(e Edge) error {
	return n.Insert(e.First, e.Second, e.Resistance, e.EMF)
}

// insert is the unlocked body of Insert.
func (n *Network) insert(first, second uint, resistance, emf float64) (bool, error) {
	if first == second {
		return false, circuitErrorf(opInsert, fmt.Errorf("node %d: %w", first, ErrSelfLoop))
	}
	if !finite(resistance) || resistance < 0 {
		return false, circuitErrorf(opInsert, fmt.Errorf("%d -- %d: %w", first, second, ErrInvalidResistance))
	}
	if !finite(emf) {
		return false, circuitErrorf(opInsert, fmt.Errorf("%d -- %d: %w", first, second, ErrInvalidEMF))
	}
	if first > second {
		first, second, emf = second, first, -emf
	}
	if _, ok := n.adj[first][second]; ok {
		return false, circuitErrorf(opInsert, fmt.Errorf("%d -- %d: %w", first, second, ErrDuplicateEdge))
	}

	b := Branch{Resistance: resistance, EMF: emf}
	n.link(first, second, b)
	n.link(second, first, b.reverse())
	n.edges++
	if matrix.IsRoughlyZero(resistance, n.opts.eps) {
		n.shorts = append(n.shorts, ShortCircuit{First: first, Second: second, EMF: emf})
	}

	return true, nil
}

func (n *Network) link(from, to uint, b Branch) {
	row, ok := n.adj[from]
	if !ok {
		row = make(map[uint]Branch)
		n.adj[from] = row
	}
	row[to] = b
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.adj)
}

// EdgeCount returns the number of edges (each undirected edge once).
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edges
}

// Nodes returns all node ids in ascending order.
func (n *Network) Nodes() []uint {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.nodes()
}

func (n *Network) nodes() []uint {
	out := make([]uint, 0, len(n.adj))
	for id := range n.adj {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns the neighbors of node in ascending order, or nil when
// node is not in the network.
func (n *Network) Neighbors(node uint) []uint {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.neighbors(node)
}

func (n *Network) neighbors(node uint) []uint {
	row, ok := n.adj[node]
	if !ok {
		return nil
	}
	out := make([]uint, 0, len(row))
	for id := range row {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Branch returns the edge between a and b as seen from a.
func (n *Network) Branch(a, b uint) (Branch, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	br, ok := n.adj[a][b]

	return br, ok
}

// Edges returns every edge once, in canonical orientation (First < Second),
// sorted by (First, Second).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edgeList()
}

func (n *Network) edgeList() []Edge {
	out := make([]Edge, 0, n.edges)
	for _, a := range n.nodes() {
		for _, b := range n.neighbors(a) {
			if a < b {
				br := n.adj[a][b]
				out = append(out, Edge{First: a, Second: b, Resistance: br.Resistance, EMF: br.EMF})
			}
		}
	}

	return out
}

// ShortCircuits returns the short circuits sorted by (First, Second).
func (n *Network) ShortCircuits() []ShortCircuit {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.sortedShorts()
}

func (n *Network) sortedShorts() []ShortCircuit {
	out := slices.Clone(n.shorts)
	slices.SortFunc(out, func(x, y ShortCircuit) int {
		if c := cmp.Compare(x.First, y.First); c != 0 {
			return c
		}

		return cmp.Compare(x.Second, y.Second)
	})

	return out
}
