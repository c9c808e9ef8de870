// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability); NaN is rejected too.
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and consumes no draws.
//   - Adds nodes 0..n-1 in ascending order, then tries pairs (i asc, j asc).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph over
// n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes first, so isolated people are still part of the network.
		if err := addNodes(methodRandomSparse, g, n); err != nil {
			return err
		}

		// 3) Bernoulli trial per unordered pair in a fixed order.
		var include bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case stochastic:
					include = cfg.rng.Float64() < p
				default:
					include = p == probMax
				}
				if !include {
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}

// addNodes inserts 0..n-1 into g, wrapping failures with method context.
func addNodes(method string, g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(i); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
	}

	return nil
}
