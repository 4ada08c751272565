// File: view.go
// Role: Non-mutating graph views (induced subgraphs and single-vertex removal).
// Determinism:
//   - Preserves vertex/edge IDs, weights, attributes and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance owned by the caller.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph; concurrent views over one source are safe.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.
//   - WithoutVertex is the removal view used by closeness vitality.

package core

import (
	"fmt"
	"sync/atomic"
)

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. IDs in keep that are absent from g are ignored.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	// AI-HINT: Build problem-specific slices of the graph without side effects on 'g'.
	out := NewGraph(g.options(true)...)

	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Snapshot the edge ID counter under the same lock as the edge catalog so
	// later AddEdge calls on the view never reuse a historical ID.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var e *Edge
	for _, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		linkEdge(out, &Edge{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Weight:   e.Weight,
			Directed: e.Directed,
			Attrs:    e.Attrs,
		})
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// WithoutVertex returns the subgraph of g induced by every vertex except id.
// The input graph is not mutated.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrVertexNotFound: id is not a vertex of g (wrapped with the ID).
//
// Complexity: O(V + E).
func WithoutVertex(g *Graph, id string) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("core: WithoutVertex(%q): %w", id, ErrVertexNotFound)
	}

	ids := g.Vertices()
	keep := make(map[string]bool, len(ids))
	for _, v := range ids {
		if v != id {
			keep[v] = true
		}
	}

	return InducedSubgraph(g, keep), nil
}
