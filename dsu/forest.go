// SPDX-License-Identifier: MIT

package dsu

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrUnknownElement indicates that Find or Union received an id that was
// never registered with MakeSet.
var ErrUnknownElement = errors.New("dsu: unknown element")

// Forest is a disjoint-set forest over ids of type K.
// The zero value is not usable; create one with New.
// Not safe for concurrent use.
type Forest[K comparable] struct {
	index  map[K]int // id -> arena slot
	ids    []K       // arena slot -> id
	parent []int
	rank   []uint8
	sets   int
}

// New creates an empty forest with room for capacity elements.
func New[K comparable](capacity int) *Forest[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &Forest[K]{
		index:  make(map[K]int, capacity),
		ids:    make([]K, 0, capacity),
		parent: make([]int, 0, capacity),
		rank:   make([]uint8, 0, capacity),
	}
}

// MakeSet registers id as a singleton set. It reports false, and leaves the
// forest unchanged, when id is already present.
func (f *Forest[K]) MakeSet(id K) bool {
	if _, ok := f.index[id]; ok {
		return false
	}
	slot := len(f.ids)
	f.index[id] = slot
	f.ids = append(f.ids, id)
	f.parent = append(f.parent, slot)
	f.rank = append(f.rank, 0)
	f.sets++

	return true
}

// Contains reports whether id was registered.
func (f *Forest[K]) Contains(id K) bool {
	_, ok := f.index[id]

	return ok
}

// Len returns the number of registered elements.
func (f *Forest[K]) Len() int { return len(f.ids) }

// Sets returns the number of disjoint sets.
func (f *Forest[K]) Sets() int { return f.sets }

// root walks to the representative slot, halving the path on the way.
func (f *Forest[K]) root(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

func (f *Forest[K]) slot(id K) (int, error) {
	x, ok := f.index[id]
	if !ok {
		return 0, fmt.Errorf("dsu: %v: %w", id, ErrUnknownElement)
	}

	return x, nil
}

// Find returns the representative id of the set containing id.
func (f *Forest[K]) Find(id K) (K, error) {
	x, err := f.slot(id)
	if err != nil {
		var zero K
		return zero, err
	}

	return f.ids[f.root(x)], nil
}

// Union merges the sets containing a and b. It reports whether a merge
// happened (false when they were already joined).
//
// Union by rank: the shallower tree is attached below the deeper root; on a
// tie the root of a wins and its rank grows by one.
func (f *Forest[K]) Union(a, b K) (bool, error) {
	xa, err := f.slot(a)
	if err != nil {
		return false, err
	}
	xb, err := f.slot(b)
	if err != nil {
		return false, err
	}
	ra, rb := f.root(xa), f.root(xb)
	if ra == rb {
		return false, nil
	}
	switch {
	case f.rank[ra] < f.rank[rb]:
		f.parent[ra] = rb
	case f.rank[ra] > f.rank[rb]:
		f.parent[rb] = ra
	default:
		f.parent[rb] = ra
		f.rank[ra]++
	}
	f.sets--

	return true, nil
}

// Same reports whether a and b belong to the same set.
func (f *Forest[K]) Same(a, b K) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Groups returns the partition. Groups appear in the order their first
// member was registered; members keep registration order.
// Complexity: O(n·α(n)).
func (f *Forest[K]) Groups() [][]K {
	out := make([][]K, 0, f.sets)
	at := make(map[int]int, f.sets) // root slot -> position in out
	for x, id := range f.ids {
		r := f.root(x)
		pos, ok := at[r]
		if !ok {
			pos = len(out)
			at[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], id)
	}

	return out
}

// SortedGroups returns the partition with every group sorted ascending and
// the groups ordered by their smallest member, independent of insertion
// order.
func SortedGroups[K constraints.Ordered](f *Forest[K]) [][]K {
	groups := f.Groups()
	for _, g := range groups {
		slices.Sort(g)
	}
	slices.SortFunc(groups, func(a, b []K) int { return cmp.Compare(a[0], b[0]) })

	return groups
}
