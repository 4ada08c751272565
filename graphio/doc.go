// Package graphio reads and writes graph documents: a flat, format-neutral
// description of a core.Graph (flags, vertices, edges with weights and
// numeric attributes).
//
// Formats are picked by file extension:
//
//	.yaml .yml .json  → YAML (JSON is parsed as YAML)
//	.toml             → TOML
//	.hcl              → HCL (decode only)
//
// YAML:
//
//	directed: false
//	weighted: true
//	vertices: [a, b, c, lonely]
//	edges:
//	  - {from: a, to: b, weight: 2, attrs: {latency: 7}}
//	  - {from: b, to: c, weight: 3, directed: true}
//
// HCL:
//
//	weighted = true
//	vertices = ["a", "b", "c", "lonely"]
//	edge {
//	  from   = "a"
//	  to     = "b"
//	  weight = 2
//	  attrs  = { latency = 7 }
//	}
//
// An edge whose directed flag differs from the document default turns the
// resulting graph into a mixed graph.
package graphio
