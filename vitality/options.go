// SPDX-License-Identifier: MIT

package vitality

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/vitality/core"
)

// instrumentation is the tracer name used when no tracer is injected.
const instrumentation = "github.com/katalvlaran/vitality/vitality"

// defaultParallelism asks for every available unit.
const defaultParallelism = -1

// Option configures a vitality computation.
type Option func(*config)

type config struct {
	ctx         context.Context
	weight      core.WeightFunc
	baseline    float64
	hasBaseline bool
	parallelism int
	vertex      string
	single      bool
	logger      *slog.Logger
	tracer      trace.Tracer
}

func newConfig(opts []Option) config {
	c := config{
		ctx:         context.Background(),
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(instrumentation)
	}

	return c
}

// WithWeight selects the edge cost. nil (the default) means every edge costs 1.
// Use core.EdgeWeight for stored weights or core.Attribute(name) for a named
// edge attribute.
func WithWeight(fn core.WeightFunc) Option {
	return func(c *config) { c.weight = fn }
}

// WithWienerIndex supplies a precomputed baseline. It must have been computed
// with the same weight selector over the same graph.
func WithWienerIndex(x float64) Option {
	return func(c *config) {
		c.baseline = x
		c.hasBaseline = true
	}
}

// WithParallelism sets the requested worker count; see the package doc for
// how it is resolved. Default -1.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}

// WithVertex switches ClosenessVitality to single-vertex mode.
func WithVertex(id string) Option {
	return func(c *config) {
		c.vertex = id
		c.single = true
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}
