// Package influence simulates how influence spreads through a social network
// from its most important member.
//
// A run has three stages:
//
//	builder/    — random social graph, Erdős–Rényi G(n,p), plus fixed topologies
//	centrality/ — importance scores (PageRank via gonum, or degree)
//	diffusion/  — single-seed, fixed-probability, step-wise spread
//
// Supporting packages:
//
//	core/            — thread-safe undirected graph with integer node IDs
//	bfs/             — traversal, components, eccentricity and diameter
//	report/          — text summaries, Graphviz snapshots, trial statistics
//	internal/config/ — viper-backed configuration
//	cmd/influence/   — cobra command wiring it all together
//
// Spread model: the top-ranked node starts influenced. Each step, every
// influenced node tries once per not-yet-influenced friend, succeeding with
// probability p. A step that influences nobody ends the run, as do full
// coverage and the step ceiling. Failed attempts are retried in later steps.
//
// Runs are reproducible: every random draw comes from a caller-supplied
// source, consumed in ascending node order.
package influence
