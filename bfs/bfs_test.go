package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/vitality/bfs"
	"github.com/katalvlaran/vitality/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds A-B-C-D, optionally directed, with arbitrary weights.
func chain(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 7)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_DepthIgnoresWeights(t *testing.T) {
	res, err := bfs.BFS(chain(t, false), "B")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1, "B": 0, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, []string{"B", "A", "C", "D"}, res.Order)

	sum, reached := res.DepthSum()
	assert.Equal(t, 4, sum)
	assert.Equal(t, 4, reached)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, path)
}

func TestBFS_DirectedFollowsArcs(t *testing.T) {
	res, err := bfs.BFS(chain(t, true), "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, res.Order)

	_, err = res.PathTo("A")
	require.Error(t, err)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(t, false)
	_, err = bfs.BFS(g, "Z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, false)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(chain(t, false), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
