package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/influence/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddNode_IdempotentAndValidated covers node insertion rules.
func TestAddNode_IdempotentAndValidated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(3))
	require.NoError(t, g.AddNode(3)) // no-op
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(4))

	assert.ErrorIs(t, g.AddNode(-1), core.ErrNegativeNodeID)
}

// TestAddEdge_Invariants verifies that loops, duplicates and negative IDs are rejected.
func TestAddEdge_Invariants(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))

	assert.ErrorIs(t, g.AddEdge(2, 2), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 1), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(1, 0), core.ErrMultiEdgeNotAllowed, "mirror counts as duplicate")
	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrNegativeNodeID)

	assert.Equal(t, 2, g.NodeCount(), "endpoints auto-created, loop endpoint not")
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))
}

// TestNeighbors_SortedAndFresh checks ordering and slice ownership.
func TestNeighbors_SortedAndFresh(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []int{7, 2, 9, 4} {
		require.NoError(t, g.AddEdge(5, v))
	}

	nbrs, err := g.Neighbors(5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 7, 9}, nbrs)

	nbrs[0] = 100
	again, _ := g.Neighbors(5)
	assert.Equal(t, 2, again[0], "caller mutation must not leak into the graph")

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	d, err := g.Degree(5)
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	_, err = g.Degree(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestNodesAndEdges_Deterministic ensures enumeration is sorted and normalised.
func TestNodesAndEdges_Deterministic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddNode(5))

	assert.Equal(t, []int{0, 1, 2, 3, 5}, g.Nodes())
	assert.Equal(t, []core.Edge{{From: 0, To: 3}, {From: 1, To: 2}, {From: 1, To: 3}}, g.Edges())
}

// TestClone_Independent verifies the clone does not share storage.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 3, c.NodeCount())
	assert.Equal(t, 2, c.EdgeCount())
}

// TestConcurrentAddEdge ensures concurrent writers and readers are safe.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(2 * num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors(0)
		}()
	}
	wg.Wait()

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	assert.Equal(t, num, g.EdgeCount())
}
