// Package builder assembles deterministic core.Graph fixtures from named
// topologies: Cycle, Path, Star, Wheel and Complete.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): create a graph and run constructors in order.
//   - Topology(name, n): look a constructor up by name ("cycle", "star", ...).
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     SymbolNumberIDFn(prefix).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn (seed with WithSeed for reproducibility).
//
// Weights are only emitted on graphs created with core.WithWeighted(); on
// unweighted graphs every edge is added with weight 0.
//
// On directed graphs Path, Star, Wheel spokes and Complete add both arcs of
// each link; Cycle adds a single oriented ring.
//
// Option constructors panic on nonsense arguments (nil functions, negative
// weights); constructors never panic and return sentinel errors instead.
package builder
