// SPDX-License-Identifier: MIT

package wiener

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/vitality/bfs"
	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/dijkstra"
)

// Option configures Index.
type Option func(*options)

type options struct {
	weight core.WeightFunc
	ctx    context.Context
}

// WithWeight sets the per-edge cost. nil keeps unit weights.
func WithWeight(fn core.WeightFunc) Option {
	return func(o *options) { o.weight = fn }
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Index returns the Wiener index of g, or +Inf if some ordered pair of
// vertices is unreachable.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - dijkstra.ErrNegativeWeight if the selector yields a negative or NaN cost.
//   - ctx.Err() on cancellation.
func Index(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n < 2 {
		return 0, nil
	}

	var total float64
	for _, src := range vertices {
		if err := o.ctx.Err(); err != nil {
			return 0, err
		}
		sum, err := fromSource(g, src, n, o)
		if err != nil {
			return 0, fmt.Errorf("wiener: source %q: %w", src, err)
		}
		if math.IsInf(sum, 1) {
			return math.Inf(1), nil
		}
		total += sum
	}

	// Mixed graphs count as directed: their pair distances are asymmetric.
	if !g.Directed() && !g.HasDirectedEdges() {
		total /= 2
	}

	return total, nil
}

// fromSource sums distances from src to every other vertex, +Inf if any of
// the n vertices is unreachable.
func fromSource(g *core.Graph, src string, n int, o options) (float64, error) {
	if o.weight == nil {
		res, err := bfs.BFS(g, src, bfs.WithContext(o.ctx))
		if err != nil {
			return 0, err
		}
		sum, reached := res.DepthSum()
		if reached < n {
			return math.Inf(1), nil
		}

		return float64(sum), nil
	}

	dist, _, err := dijkstra.Dijkstra(g,
		dijkstra.Source(src),
		dijkstra.WithWeightFunc(o.weight),
		dijkstra.WithContext(o.ctx),
	)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, d := range dist {
		sum += d // +Inf propagates
	}

	return sum, nil
}
