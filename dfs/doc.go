// Package dfs implements depth-first traversal and articulation-point
// detection on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     It supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting and neighbor filtering. With
//     WithFullTraversal every component is walked.
//   - ArticulationPoints returns the cut vertices of an undirected graph:
//     those whose removal increases the number of connected components.
//
// Why:
//
//   - A cut vertex of a connected graph disconnects it, so any distance sum
//     over the graph without that vertex is infinite. Callers that need that
//     sum for every vertex can skip the cut vertices outright.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post-order, Depth, Parent, Visited maps
//
// Determinism:
//
//	core.NeighborIDs returns neighbors sorted ascending and full traversals
//	start from vertices in sorted order, so results are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|):
//
//   - Time:   O(V + E) for both DFS and ArticulationPoints.
//   - Memory: O(V) for the maps plus the recursion stack.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrStartVertexNotFound: startID absent (single-root DFS).
//   - ErrDirectedGraph: ArticulationPoints on a graph with directed edges.
//   - Hook errors and context errors are wrapped and returned as-is.
package dfs
