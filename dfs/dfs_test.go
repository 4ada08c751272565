package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/dfs"
)

// undirected builds an unweighted undirected graph from an edge list.
func undirected(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PostOrderAndParents(t *testing.T) {
	// A-B, A-C, B-D
	g := undirected(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, res.Parent)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
}

func TestDFS_DirectedFollowsArcs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"C", "D"})
	require.NoError(t, g.AddVertex("E"))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D", "C", "E"}, res.Order)
	assert.Len(t, res.Visited, 5)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"})

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "D"}, res.Order)
	assert.NotContains(t, res.Parent, "C")

	res, err = dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "D" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	var pre, post []string
	_, err := dfs.DFS(g, "A",
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, pre)
	assert.Equal(t, []string{"C", "B", "A"}, post)

	boom := errors.New("boom")
	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
