// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/vitality/core"
)

// walker carries the state of one traversal.
type walker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS walks g depth-first from startID, or from every unvisited vertex when
// WithFullTraversal is set. On a hook or context error the partial result is
// returned with Order cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:   make([]string, 0, len(vertices)),
			Depth:   make(map[string]int, len(vertices)),
			Parent:  make(map[string]string, len(vertices)),
			Visited: make(map[string]bool, len(vertices)),
		},
	}

	roots := []string{startID}
	if o.FullTraversal {
		roots = vertices
	}
	for _, v := range roots {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			w.res.Order = nil
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) traverse(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}

	for _, nid := range nbs {
		if nid == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] || (w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth) {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
