// Package wiener computes the Wiener index of a core.Graph: the sum of
// shortest-path distances over all vertex pairs.
//
// Convention:
//
//   - Undirected graphs sum each unordered pair once.
//   - Graphs with any directed edge sum every ordered pair (u,v), u != v.
//   - If some pair has no path (disconnected, or not strongly connected when
//     directed) the index is +Inf. This is a value, not an error.
//   - Graphs with zero or one vertex have index 0.
//
// Distances:
//
//   - No weight selector (the default): every edge counts 1 and each source
//     is expanded with bfs.BFS.
//   - WithWeight(fn): each source is expanded with dijkstra.Dijkstra using fn
//     as the cost. Negative or NaN costs fail with dijkstra.ErrNegativeWeight.
//
// Complexity: V single-source searches, O(V·(V+E)) unweighted and
// O(V·(V+E) log V) weighted. Context cancellation is checked between sources
// and inside each search.
package wiener
