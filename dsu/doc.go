// Package dsu provides a disjoint-set (union-find) forest over arbitrary
// comparable element ids.
//
// Elements are registered with MakeSet and live in an arena: the forest maps
// each id to a dense index once, and parent links and ranks are plain slices
// addressed by that index. Find uses path halving, Union uses union by rank,
// so a sequence of m operations over n elements costs O(m·α(n)).
//
// Groups returns the partition in first-insertion order; SortedGroups (for
// ordered ids) returns every group sorted ascending and the groups ordered by
// their smallest member, which is the deterministic order the network solver
// relies on.
package dsu
