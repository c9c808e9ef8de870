// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node and edge lifecycle, counts.
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//   - Edges() returns edges sorted by (From, To) with From < To.

package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject negative IDs (ErrNegativeNodeID).
//   - Stage 2: Under the write lock, register the node and bootstrap its adjacency bucket.
//
// Complexity: Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id NodeID) error {
	if id < 0 {
		return ErrNegativeNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id; the caller holds g.mu for writing.
func (g *Graph) addNodeLocked(id NodeID) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[NodeID]struct{})
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// AddEdge connects u and v, creating missing endpoints on the fly.
//
// Steps:
//  1. Validate IDs (ErrNegativeNodeID) and reject loops (ErrLoopNotAllowed).
//  2. Lock, ensure both endpoints, reject duplicates (ErrMultiEdgeNotAllowed).
//  3. Link adjacency in both directions.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u < 0 || v < 0 {
		return ErrNegativeNodeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(u)
	g.addNodeLocked(v)

	if _, dup := g.adjacency[u][v]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns every edge once, normalised to From < To and sorted by
// (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E| (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
