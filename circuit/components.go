// SPDX-License-Identifier: MIT

package circuit

import (
	"github.com/katalvlaran/resnet/dsu"
)

// ConnectedComponents splits the network into its maximal connected
// sub-networks.
//
// Implementation:
//   - Stage 1: MakeSet for every node of a dsu.Forest.
//   - Stage 2: Union across every edge, visited from both endpoints.
//   - Stage 3: Group nodes by representative and rebuild one sub-network per
//     group with TryInsert, which drops the second visit of each edge.
//
// Behavior highlights:
//   - Components keep the global node ids and the options of n.
//   - The result is ordered by each component's minimum node id.
//
// Complexity: O((V+E)·α(V) + V log V).
func (n *Network) ConnectedComponents() []*Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.components()
}

func (n *Network) components() []*Network {
	forest := dsu.New[uint](len(n.adj))
	for id := range n.adj {
		forest.MakeSet(id)
	}
	for a, row := range n.adj {
		for b := range row {
			_, _ = forest.Union(a, b) // both ids registered above
		}
	}

	groups := dsu.SortedGroups(forest)
	out := make([]*Network, 0, len(groups))
	for _, group := range groups {
		sub := &Network{
			adj:  make(map[uint]map[uint]Branch, len(group)),
			opts: n.opts,
		}
		for _, a := range group {
			for b, br := range n.adj[a] {
				_, _ = sub.TryInsert(a, b, br.Resistance, br.EMF) // values were validated on insert
			}
		}
		out = append(out, sub)
	}

	return out
}
