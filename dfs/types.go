// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrDirectedGraph is returned by ArticulationPoints when the graph is
	// directed or carries any directed edge.
	ErrDirectedGraph = errors.New("dfs: articulation points need an undirected graph")
)

// Option configures DFS behavior via functional arguments.
type Option func(*DFSOptions)

// DFSOptions holds parameters and callbacks for a traversal.
type DFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit runs when a vertex is first discovered (pre-order).
	OnVisit func(id string) error

	// OnExit runs after all descendants are explored (post-order).
	OnExit func(id string) error

	// MaxDepth limits recursion depth; negative means no limit.
	MaxDepth int

	// FilterNeighbor skips a neighbor when it returns false.
	FilterNeighbor func(id string) bool

	// FullTraversal walks every component, ignoring startID.
	FullTraversal bool
}

// DefaultOptions returns options with a background context, no hooks,
// no depth limit and single-root traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; an error aborts the walk.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit registers a post-order hook; an error aborts the walk.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth stops descending below the given depth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal walks every vertex, starting a new tree at each
// unvisited one in sorted order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult holds the outcome of a traversal.
type DFSResult struct {
	// Order lists vertices in post-order.
	Order []string

	// Depth maps each visited vertex to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each non-root visited vertex to its tree parent.
	Parent map[string]string

	// Visited marks every discovered vertex.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
