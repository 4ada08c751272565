// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitality/core"
)

// ErrInvalidDocument is returned when a document cannot be turned into a graph.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// Document is the serialisable form of a graph.
type Document struct {
	Directed   bool      `yaml:"directed,omitempty" toml:"directed,omitempty"`
	Weighted   bool      `yaml:"weighted,omitempty" toml:"weighted,omitempty"`
	Multigraph bool      `yaml:"multigraph,omitempty" toml:"multigraph,omitempty"`
	Loops      bool      `yaml:"loops,omitempty" toml:"loops,omitempty"`
	Vertices   []string  `yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges      []EdgeDoc `yaml:"edges,omitempty" toml:"edges,omitempty"`
}

// EdgeDoc is one edge. Directed overrides the document default when set.
type EdgeDoc struct {
	From     string             `yaml:"from" toml:"from"`
	To       string             `yaml:"to" toml:"to"`
	Weight   float64            `yaml:"weight,omitempty" toml:"weight,omitempty"`
	Directed *bool              `yaml:"directed,omitempty" toml:"directed,omitempty"`
	Attrs    map[string]float64 `yaml:"attrs,omitempty" toml:"attrs,omitempty"`
}

// mixed reports whether any edge overrides the default direction.
func (d *Document) mixed() bool {
	for _, e := range d.Edges {
		if e.Directed != nil && *e.Directed != d.Directed {
			return true
		}
	}

	return false
}

// Graph builds a fresh core.Graph from d.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if d.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.mixed() {
		opts = append(opts, core.WithMixedEdges())
	}
	g := core.NewGraph(opts...)

	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %w", ErrInvalidDocument, id, err)
		}
	}
	for i, e := range d.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		for name, v := range e.Attrs {
			eopts = append(eopts, core.WithEdgeAttr(name, v))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %s→%s: %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a Document. Edges keep insertion order.
func FromGraph(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	d := &Document{
		Directed:   g.Directed(),
		Weighted:   g.Weighted(),
		Multigraph: g.Multigraph(),
		Loops:      g.Looped(),
		Vertices:   g.Vertices(),
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		if e.Directed != d.Directed {
			dir := e.Directed
			ed.Directed = &dir
		}
		if len(e.Attrs) > 0 {
			ed.Attrs = make(map[string]float64, len(e.Attrs))
			for k, v := range e.Attrs {
				ed.Attrs[k] = v
			}
		}
		d.Edges = append(d.Edges, ed)
	}

	return d, nil
}
