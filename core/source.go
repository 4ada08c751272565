package core

// Source is anything that can hand out a *Graph: a *Graph itself, or a thin
// wrapper (a domain model, a cached snapshot) exposing its underlying graph.
type Source interface {
	GraphObject() *Graph
}

// Resolve unwraps src to its underlying graph.
// A nil src, or one resolving to a nil graph, yields ErrNilGraph.
func Resolve(src Source) (*Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	g := src.GraphObject()
	if g == nil {
		return nil, ErrNilGraph
	}

	return g, nil
}
