// Package vitality measures how much each vertex of a graph contributes to
// its overall closeness.
//
// What is closeness vitality?
//
//	The Wiener index of a graph is the sum of shortest-path distances over
//	all vertex pairs. The closeness vitality of a vertex v is the Wiener index
//	of the graph minus the Wiener index of the graph with v (and its edges)
//	removed. A vertex whose removal disconnects the graph has vitality -Inf.
//
// Layout:
//
//	core/         thread-safe Graph, Vertex, Edge types, removal views, weight selectors
//	bfs/          hop-count distances (the unit-weight oracle)
//	dijkstra/     weighted distances with pluggable edge costs
//	dfs/          depth-first traversal and articulation points
//	wiener/       the Wiener index over either oracle
//	vitality/     per-vertex closeness vitality with a bounded parallel fan-out
//	builder/      deterministic topologies (cycle, path, star, wheel, complete)
//	graphio/      YAML, JSON, TOML and HCL graph documents
//	config/       viper-backed settings shared by the CLI
//	telemetry/    OpenTelemetry tracer provider setup
//	cmd/vitality/ the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	The 4-cycle has Wiener index 8. Removing any vertex leaves a path of
//	three vertices with index 4, so every vertex has vitality 4.
//
//	go install github.com/katalvlaran/vitality/cmd/vitality@latest
package vitality
