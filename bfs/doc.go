// Package bfs provides breadth-first search over a core.Graph and the
// structural statistics built on it.
//
// BFS explores nodes in increasing hop distance from a start node. Neighbors
// are visited in ascending NodeID order, so Order is deterministic.
//
// On top of the traversal the package exposes:
//
//	Eccentricity(g, v)  — largest hop distance from v within its component
//	Components(g)       — connected components, each sorted, ordered by smallest member
//	Diameter(g)         — largest eccentricity; ok=false when g is disconnected or empty
//	Summarize(g)        — Stats{Nodes, Edges, Components, Largest, Diameter, Connected}
//
// The influence reporter prints Summarize output before a run, and the
// diffusion tests use Diameter to bound the number of steps a p=1 spread
// needs on a connected network.
//
// Options (functional):
//
//	WithContext(ctx)         — cancellation checked once per dequeue
//	WithMaxDepth(d)          — stop expanding beyond depth d (0 = unlimited, <0 = ErrOptionViolation)
//	WithOnVisit(fn)          — hook per visited node; a returned error aborts the search
//	WithFilterNeighbor(fn)   — skip edges for which fn returns false
package bfs
