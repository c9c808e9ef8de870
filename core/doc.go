// Package core provides the thread-safe in-memory social graph that every
// other package of influence reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Nodes are small non-negative integers (NodeID), so "lowest identifier"
//     has an obvious meaning for deterministic tie-breaks.
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v] = struct{}{} and adjacency[v][u] = struct{}{}
//   - One sync.RWMutex guards nodes and adjacency, so a fully built graph can
//     be shared read-only between concurrent simulations.
//
// Why a dedicated type instead of a general-purpose graph?
//
//   - Deterministic iteration: Nodes(), Edges() and Neighbors() all return
//     sorted results, which keeps random draws reproducible for a fixed seed.
//   - Invariants are enforced at insertion time, so downstream algorithms
//     never have to re-validate endpoints.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id NodeID) error           // O(1), idempotent
//	HasNode(id NodeID) bool            // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID) error         // O(1)
//	HasEdge(u, v NodeID) bool          // O(1)
//
//	// Query
//	Neighbors(id NodeID) ([]NodeID, error) // O(d·log d), sorted asc
//	Degree(id NodeID) (int, error)         // O(1)
//	Nodes() []NodeID                       // O(V·log V)
//	Edges() []Edge                         // O(E·log E), From < To
//	NodeCount() int                        // O(1)
//	EdgeCount() int                        // O(1)
//
//	// Cloning
//	Clone() *Graph                         // O(V+E)
//
// Errors:
//
//	ErrNegativeNodeID      – node identifiers must be ≥ 0
//	ErrNodeNotFound        – missing node
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – duplicate edge
package core
