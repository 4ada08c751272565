// SPDX-License-Identifier: MIT

package vitality

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/dfs"
	"github.com/katalvlaran/vitality/wiener"
)

// Result is what ClosenessVitality returns. In single-vertex mode Vertex and
// Value are set and Values is nil; otherwise Values holds every vertex.
type Result struct {
	Vertex string
	Value  float64
	Values map[string]float64
}

// Single reports whether r came from single-vertex mode.
func (r Result) Single() bool { return r.Values == nil }

// ClosenessVitality computes the closeness vitality of the vertex selected
// with WithVertex, or of every vertex when none is selected.
func ClosenessVitality(src core.Source, opts ...Option) (Result, error) {
	cfg := newConfig(opts)
	if cfg.single {
		v, err := of(src, cfg.vertex, cfg)
		if err != nil {
			return Result{}, err
		}

		return Result{Vertex: cfg.vertex, Value: v}, nil
	}

	values, err := all(src, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{Values: values}, nil
}

// Of returns the closeness vitality of vertex id. WithVertex and
// WithParallelism are ignored.
func Of(src core.Source, id string, opts ...Option) (float64, error) {
	return of(src, id, newConfig(opts))
}

// All returns the closeness vitality of every vertex of src.
func All(src core.Source, opts ...Option) (map[string]float64, error) {
	return all(src, newConfig(opts))
}

func of(src core.Source, id string, cfg config) (float64, error) {
	g, err := core.Resolve(src)
	if err != nil {
		return 0, err
	}

	ctx, span := cfg.tracer.Start(cfg.ctx, "vitality.Of",
		trace.WithAttributes(attribute.String("vitality.vertex", id)))
	defer span.End()

	baseline, err := cfg.baselineOf(ctx, g)
	if err != nil {
		return 0, fail(span, err)
	}

	v, err := vertexVitality(ctx, g, id, cfg.weight, baseline)
	if err != nil {
		return 0, fail(span, err)
	}
	cfg.logger.DebugContext(ctx, "closeness vitality", "vertex", id, "baseline", baseline, "value", v)

	return v, nil
}

func all(src core.Source, cfg config) (map[string]float64, error) {
	g, err := core.Resolve(src)
	if err != nil {
		return nil, err
	}

	ids := g.Vertices()
	workers := Workers(cfg.parallelism)

	ctx, span := cfg.tracer.Start(cfg.ctx, "vitality.All", trace.WithAttributes(
		attribute.Int("vitality.vertices", len(ids)),
		attribute.Int("vitality.parallelism", cfg.parallelism),
		attribute.Int("vitality.workers", workers),
	))
	defer span.End()

	baseline, err := cfg.baselineOf(ctx, g)
	if err != nil {
		return nil, fail(span, err)
	}
	cuts, err := cfg.cutVertices(ctx, g, baseline)
	if err != nil {
		return nil, fail(span, err)
	}
	cfg.logger.DebugContext(ctx, "closeness vitality fan-out",
		"vertices", len(ids), "workers", workers, "baseline", baseline, "cut_vertices", len(cuts))

	// Each task owns values[i]; nothing else is shared mutably.
	values := make([]float64, len(ids))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, id := range ids {
		if cuts[id] {
			values[i] = math.Inf(-1)
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := vertexVitality(egCtx, g, id, cfg.weight, baseline)
			if err != nil {
				return fmt.Errorf("vitality: vertex %q: %w", id, err)
			}
			values[i] = v

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		cfg.logger.DebugContext(ctx, "closeness vitality aborted", "error", err)
		return nil, fail(span, err)
	}

	out := make(map[string]float64, len(ids))
	disconnecting := 0
	for i, id := range ids {
		out[id] = values[i]
		if math.IsInf(values[i], -1) {
			disconnecting++
		}
	}
	span.SetAttributes(attribute.Int("vitality.disconnecting", disconnecting))
	cfg.logger.DebugContext(ctx, "closeness vitality done", "vertices", len(out), "disconnecting", disconnecting)

	return out, nil
}

// baselineOf returns the supplied baseline or computes Index(g) once.
func (c config) baselineOf(ctx context.Context, g *core.Graph) (float64, error) {
	if c.hasBaseline {
		return c.baseline, nil
	}
	x, err := wiener.Index(g, wiener.WithWeight(c.weight), wiener.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("vitality: baseline: %w", err)
	}

	return x, nil
}

// cutVertices returns the articulation points of g when their vitality is
// known without recomputation: g is undirected and connected, and the
// baseline was computed here so every edge cost is already validated.
// Otherwise it returns nil.
func (c config) cutVertices(ctx context.Context, g *core.Graph, baseline float64) (map[string]bool, error) {
	if c.hasBaseline || g.Directed() || g.HasDirectedEdges() || math.IsInf(baseline, 0) || math.IsNaN(baseline) {
		return nil, nil
	}
	ids, err := dfs.ArticulationPoints(g, dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("vitality: cut vertices: %w", err)
	}
	cuts := make(map[string]bool, len(ids))
	for _, id := range ids {
		cuts[id] = true
	}

	return cuts, nil
}

// vertexVitality is baseline − Index(g − id). It reads g and nothing else.
func vertexVitality(ctx context.Context, g *core.Graph, id string, weight core.WeightFunc, baseline float64) (float64, error) {
	view, err := core.WithoutVertex(g, id)
	if err != nil {
		return 0, err
	}
	rest, err := wiener.Index(view, wiener.WithWeight(weight), wiener.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	return baseline - rest, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
