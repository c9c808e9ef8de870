// Package builder assembles social graphs for the influence simulator.
//
// A single orchestrator, BuildGraph, creates a fresh *core.Graph, resolves a
// builderConfig from functional options and applies Constructor closures in
// order. Constructors:
//
//	RandomSparse(n, p) — Erdős–Rényi G(n,p): every pair {i,j}, i<j, is linked
//	                     independently with probability p.
//	Cycle(n)           — ring 0-1-…-(n-1)-0, n ≥ 3.
//	Path(n)            — chain 0-1-…-(n-1), n ≥ 2.
//	Star(n)            — hub 0 with leaves 1..n-1, n ≥ 2.
//	Complete(n)        — K_n, n ≥ 1.
//
// Determinism: node IDs are 0..n-1 in ascending order, pairs are tried in
// (i asc, j asc) order, so a fixed WithSeed yields an identical graph.
//
// Errors are sentinels wrapped with the constructor name:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(15, 0.3),
//	)
package builder
