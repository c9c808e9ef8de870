// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return wrapped sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; the partial graph is
// discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate is the one-call GraphSource: an Erdős–Rényi graph with nodeCount
// nodes and edge probability p, seeded for reproducibility.
func Generate(nodeCount int, p float64, seed int64) (*core.Graph, error) {
	return BuildGraph([]BuilderOption{WithSeed(seed)}, RandomSparse(nodeCount, p))
}
