// Package vitality computes the closeness vitality of graph vertices: how much
// the Wiener index (sum of pairwise shortest-path distances) drops when a
// vertex is removed.
//
//	vitality(v) = Index(G) − Index(G − v)
//
// What
//
//   - Of(src, id):   one vertex.
//   - All(src):      every vertex, fanned out over a bounded worker pool.
//   - ClosenessVitality(src, opts...): dispatches to Of when WithVertex is
//     given, otherwise to All.
//
// The baseline Index(G) is computed once per call (or taken from
// WithWienerIndex) and shared read-only by every per-vertex task. Each task
// builds its own removal view with core.WithoutVertex; the caller's graph is
// never mutated.
//
// On a connected undirected graph All marks articulation points (found with
// dfs.ArticulationPoints) as −Inf up front and recomputes only the rest.
// A supplied baseline turns this off.
//
// Values
//
//   - A vertex whose removal disconnects the graph yields −Inf.
//   - A vertex missing from the graph fails with core.ErrVertexNotFound.
//   - If the graph itself is disconnected the baseline is +Inf and vitalities
//     are +Inf or NaN (+Inf − +Inf), matching plain float arithmetic.
//
// Parallelism
//
// WithParallelism(n) follows the familiar n_jobs convention, resolved per call
// against runtime.NumCPU() (units):
//
//	|n| > units ⇒ units workers, whatever the sign
//	0 < n ≤ units  ⇒ n workers
//	-units ≤ n < 0 ⇒ units+1+n workers (−1 = all units, −units = 1)
//	n == 0         ⇒ units workers
//
// Any value is accepted. Results are identical for every setting.
//
// Failure
//
// The first task error cancels the shared context: queued tasks are skipped,
// in-flight ones stop at the next source of their distance computation, and
// the error is returned wrapped with the vertex ID. No partial map is returned.
//
// Observability
//
//   - WithLogger(*slog.Logger): debug-level progress (silent by default).
//   - WithTracer(trace.Tracer): spans "vitality.All" and "vitality.Of"
//     (default: the global otel provider).
package vitality
