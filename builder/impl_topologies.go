// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_topologies.go — deterministic fixtures: Cycle, Path, Star, Complete.
//
// Contract (all four):
//   • Node IDs 0..n-1, added in ascending order.
//   • Stable edge emission order documented per constructor.
//   • Sentinel errors only; never panic.
package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"

	// MinCycleNodes is the smallest ring without loops or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinStarNodes is one hub plus one leaf.
	MinStarNodes = 2
	// MinCompleteNodes admits the trivial K_1.
	MinCompleteNodes = 1

	// StarCenter is the hub ID emitted by Star.
	StarCenter core.NodeID = 0
)

// Cycle builds the ring C_n: edges i—(i+1)%n for i=0..n-1.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(MethodCycle, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(i, (i+1)%n); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodCycle, i, (i+1)%n, err)
			}
		}

		return nil
	}
}

// Path builds the chain P_n: edges i—(i+1) for i=0..n-2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(MethodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(i, i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodPath, i, i+1, err)
			}
		}

		return nil
	}
}

// Star builds a hub (StarCenter) connected to leaves 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(MethodStar, g, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := g.AddEdge(StarCenter, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodStar, StarCenter, leaf, err)
			}
		}

		return nil
	}
}

// Complete builds K_n, emitting pairs in (i asc, j asc) order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(MethodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
