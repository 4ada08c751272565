// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration, mutation rules and queries.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/vitality/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA), "AddVertex must be idempotent")
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())

	_, err := g.AddEdge(VertexA, VertexB, 0)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.Equal(t, 0, g.EdgeCount())

	require.ErrorIs(t, g.RemoveVertex(VertexA), core.ErrVertexNotFound)
	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	// Unweighted graph rejects non-zero weight.
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, 5)
	require.ErrorIs(t, err, core.ErrBadWeight)

	// Weighted graph accepts non-zero weight.
	g = core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge(VertexA, VertexB, 7)
	require.NoError(t, err)
	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, 7.0, e.Weight)

	// Loops rejected by default.
	_, err = g.AddEdge(VertexX, VertexX, 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// Multi-edges rejected by default.
	_, err = g.AddEdge(VertexA, VertexB, 1)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Multi-edges allowed when enabled.
	mg := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	e1, err := mg.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)
	e2, err := mg.AddEdge(VertexA, VertexB, 2)
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, mg.EdgeCount())

	_, err = g.AddEdge("", VertexB, 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_MixedEdgesDirectedOverride(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexX, VertexA, 0, core.WithEdgeDirected(true))
	require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	// Attributes are allowed without mixed mode.
	_, err = g.AddEdge(VertexX, VertexA, 0, core.WithEdgeAttr("length", 3))
	require.NoError(t, err)

	mg := core.NewMixedGraph()
	_, err = mg.AddEdge(VertexX, VertexA, 0, core.WithEdgeDirected(true))
	require.NoError(t, err)
	assert.True(t, mg.HasEdge(VertexX, VertexA))
	assert.False(t, mg.HasEdge(VertexA, VertexX))
	assert.True(t, mg.HasDirectedEdges())
}

func TestGraph_NeighborsPolicy(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge(VertexA, VertexB, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexC, VertexA, 0)
	require.NoError(t, err)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB}, ids, "directed edges are outgoing only")

	_, err = g.Neighbors(VertexD)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	ug := core.NewGraph()
	_, _ = ug.AddEdge(VertexA, VertexB, 0)
	_, _ = ug.AddEdge(VertexC, VertexA, 0)
	ids, err = ug.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)
}

func TestGraph_EdgesAreInInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
}

func TestGraph_StatsSnapshot(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted())
	_, _ = g.AddEdge(VertexA, VertexB, 1)
	_, _ = g.AddEdge(VertexB, VertexC, 1, core.WithEdgeDirected(true))

	s := g.Stats()
	assert.True(t, s.Weighted)
	assert.True(t, s.MixedMode)
	assert.False(t, s.DirectedDefault)
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 1, s.DirectedEdgeCount)
	assert.Equal(t, 1, s.UndirectedEdgeCount)
}

func TestGraph_FilterAndRemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	e1, _ := g.AddEdge(VertexA, VertexB, 1)
	_, _ = g.AddEdge(VertexB, VertexC, 10)

	g.FilterEdges(func(e *core.Edge) bool { return e.Weight < 5 })
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(VertexB, VertexC))

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.Equal(t, 3, g.VertexCount(), "edge removal keeps vertices")
}

// TestConcurrentAddEdge ensures concurrent AddEdge calls on a multigraph are safe.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(VertexX, fmt.Sprintf("V%d", id), 0)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}
