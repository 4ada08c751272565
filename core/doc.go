// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface, plus the non-mutating views that distance and
// vitality algorithms build on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Named numeric edge attributes (WithEdgeAttr) for alternative distances
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Views:
//
//	InducedSubgraph(g, keep)   // O(V+E): vertices in keep, edges with both ends kept
//	WithoutVertex(g, id)       // O(V+E): everything but id; ErrVertexNotFound if absent
//
// Views never mutate the source, so any number of goroutines may derive views
// from one graph concurrently.
//
// Weight selectors:
//
//	WeightFunc                 // func(*Edge) float64; nil means unit weight
//	UnitWeight, EdgeWeight     // constant 1 / Edge.Weight
//	Attribute(name)            // Edge.Attrs[name], 1 when missing
//
// Sources:
//
//	Source                     // GraphObject() *Graph; *Graph implements it
//	Resolve(src)               // unwraps a Source, ErrNilGraph on nil
//
// Errors:
//
//	ErrNilGraph             – nil graph or Source
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, or NaN
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
