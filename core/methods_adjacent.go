// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree) and Clone.
// Determinism:
//   - Neighbors() returns unique IDs sorted ascending.

package core

import "sort"

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Implementation:
//   - Stage 1: Acquire the read lock and validate existence (ErrNodeNotFound).
//   - Stage 2: Copy the adjacency bucket into a fresh slice and sort it.
//
// Behavior highlights:
//   - The returned slice is freshly allocated; callers may retain or mutate it.
//   - Deterministic order by contract, independent of map iteration.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]NodeID, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// Clone returns a deep copy of g. The copy shares no maps with the original.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nodes:     make(map[NodeID]struct{}, len(g.nodes)),
		adjacency: make(map[NodeID]map[NodeID]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	for u, nbrs := range g.adjacency {
		inner := make(map[NodeID]struct{}, len(nbrs))
		for v := range nbrs {
			inner[v] = struct{}{}
		}
		c.adjacency[u] = inner
	}

	return c
}
