// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Edge, Graph, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards nodes, adjacency and edgeCount.
//   - Lock order is irrelevant: there is exactly one lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that a node identifier is below zero.
	ErrNegativeNodeID = errors.New("core: node ID is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the edge {u,v} already exists.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NodeID identifies a person in the social graph.
// Identifiers are comparable and ordered; the builder emits 0..n-1.
type NodeID = int

// Edge is an undirected connection {From, To}.
// Values returned by Graph.Edges always satisfy From < To.
type Edge struct {
	From NodeID
	To   NodeID
}

// Graph is an undirected simple graph over integer node identifiers.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes     map[NodeID]struct{}
	adjacency map[NodeID]map[NodeID]struct{} // adjacency[u][v] mirrored as adjacency[v][u]
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]struct{}),
		adjacency: make(map[NodeID]map[NodeID]struct{}),
	}
}
