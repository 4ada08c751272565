// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/vitality/core"
)

// lowlink holds discovery times and low-points for Tarjan's cut-vertex scan.
type lowlink struct {
	graph *core.Graph
	ctx   context.Context
	timer int
	disc  map[string]int
	low   map[string]int
	cut   map[string]bool
}

// ArticulationPoints returns the cut vertices of g sorted ascending. Every
// component is scanned. Only WithContext is honored among opts.
// Graphs with any directed edge yield ErrDirectedGraph.
func ArticulationPoints(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	l := &lowlink{
		graph: g,
		ctx:   o.Ctx,
		disc:  make(map[string]int, n),
		low:   make(map[string]int, n),
		cut:   make(map[string]bool),
	}
	for _, root := range g.Vertices() {
		if _, seen := l.disc[root]; seen {
			continue
		}
		if err := l.visit(root, ""); err != nil {
			return nil, err
		}
	}

	out := make([]string, 0, len(l.cut))
	for id := range l.cut {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

// visit returns after the subtree of u is fully scanned. A root is a cut
// vertex iff it has two or more tree children; any other u is one iff some
// child cannot reach above u without passing through it.
func (l *lowlink) visit(u, parent string) error {
	if err := l.ctx.Err(); err != nil {
		return err
	}

	l.timer++
	l.disc[u] = l.timer
	l.low[u] = l.timer

	nbs, err := l.graph.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", u, err)
	}

	children := 0
	for _, v := range nbs {
		if v == u || v == parent {
			continue
		}
		if d, seen := l.disc[v]; seen {
			l.low[u] = min(l.low[u], d)
			continue
		}
		children++
		if err = l.visit(v, u); err != nil {
			return err
		}
		l.low[u] = min(l.low[u], l.low[v])
		if parent != "" && l.low[v] >= l.disc[u] {
			l.cut[u] = true
		}
	}
	if parent == "" && children > 1 {
		l.cut[u] = true
	}

	return nil
}
