// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over core.Graph with non-negative, float64 edge costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     vertices in O((V + E) log V) time, reporting +Inf for unreachable ones.
//   - A min-heap with lazy decrease-key always expands the next-closest vertex.
//   - Edge cost comes from a core.WeightFunc selector, so the same graph can be
//     measured by its stored weight, by a named edge attribute, or by hop count.
//
// Key features:
//
//   - WithWeightFunc: cost selector. Default is core.EdgeWeight on weighted graphs
//     and core.UnitWeight otherwise.
//   - WithReturnPath: also return a predecessor map; PathTo rebuilds a path.
//   - WithMaxDistance: leave vertices beyond the cap at +Inf.
//   - WithInfEdgeThreshold: treat any edge costing ≥ threshold as impassable.
//   - WithContext: cancellation is checked once per settled vertex.
//   - Mixed edges: directed edges are followed From→To only.
//
// Errors:
//
//   - ErrEmptySource     if no Source option was given.
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrVertexNotFound  if the source is absent.
//   - ErrNegativeWeight  if the selector yields a negative or NaN cost.
//   - ErrBadMaxDistance  if WithMaxDistance got a negative or NaN value.
//   - ErrBadInfThreshold if WithInfEdgeThreshold got a non-positive value.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//		dijkstra.Source("A"),
//		dijkstra.WithWeightFunc(core.Attribute("latency")),
//		dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(dist["C"], dijkstra.PathTo(prev, dist, "C"))
package dijkstra
