// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/vitality/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance; +Inf if unreachable (or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath was requested, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; "" for the source
//     and for unreachable vertices.
//   - err:  validation failure, negative weight, or ctx.Err().
//
// Validation order:
//  1. option errors (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source non-empty (ErrEmptySource).
//  3. g non-nil (ErrNilGraph).
//  4. g contains Source (ErrVertexNotFound).
//  5. every selected weight is ≥ 0 and not NaN (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Weight == nil {
		cfg.Weight = core.UnitWeight
		if g.Weighted() {
			cfg.Weight = core.EdgeWeight
		}
	}

	// Fail fast on bad costs before touching the heap.
	for _, e := range g.Edges() {
		if w := cfg.Weight(e); w < 0 || math.IsNaN(w) {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(cfg.Ctx); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf everywhere except the source and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles vertices in order of distance until the heap drains or the
// next candidate lies beyond MaxDistance.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve dist[v] for every edge leaving u.
// Assumes dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range edges {
		// Undirected edges are mirrored, so u may sit on either end.
		v := e.To
		if v == u {
			v = e.From
		}

		w := r.options.Weight(e)
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Decrease-key is lazy:
// improved distances are pushed again and stale entries skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)        { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the source→dest path from a predecessor map returned with
// WithReturnPath. Returns nil if dest was not reached.
func PathTo(prev map[string]string, dist map[string]float64, dest string) []string {
	d, ok := dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil
	}
	var path []string
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
