// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// builderConfig holds the resolved knobs every constructor reads.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng feeds stochastic weight functions; nil means deterministic defaults.
	rng *rand.Rand
	// weightFn produces the weight for each emitted edge of a weighted graph.
	weightFn WeightFn
}

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// newBuilderConfig resolves defaults, then applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID scheme.
// Panics on nil, since that is a programming error.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight distribution.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// edgeWeight picks the next weight, 0 when g is unweighted.
func (c builderConfig) edgeWeight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
