package vitality_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/vitality/builder"
	"github.com/katalvlaran/vitality/core"
	"github.com/katalvlaran/vitality/dijkstra"
	"github.com/katalvlaran/vitality/vitality"
	"github.com/katalvlaran/vitality/wiener"
)

func build(t *testing.T, ctor builder.Constructor, gopts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, ctor)
	require.NoError(t, err)

	return g
}

func TestClosenessVitality_Cycle4(t *testing.T) {
	g := build(t, builder.Cycle(4))

	baseline, err := wiener.Index(g)
	require.NoError(t, err)
	require.Equal(t, 8.0, baseline)

	p3, err := wiener.Index(build(t, builder.Path(3)))
	require.NoError(t, err)

	res, err := vitality.ClosenessVitality(g)
	require.NoError(t, err)
	require.False(t, res.Single())
	for _, id := range g.Vertices() {
		assert.Equal(t, baseline-p3, res.Values[id], id)
	}
	assert.Equal(t, map[string]float64{"0": 4, "1": 4, "2": 4, "3": 4}, res.Values)
}

func TestClosenessVitality_WeightedPair(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(5)},
		builder.Path(2),
	)
	require.NoError(t, err)

	got, err := vitality.All(g, vitality.WithWeight(core.EdgeWeight))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"0": 5, "1": 5}, got)

	// Same pair, weight carried as a named attribute.
	ag := core.NewGraph()
	_, err = ag.AddEdge("u", "v", 0, core.WithEdgeAttr("length", 5))
	require.NoError(t, err)
	res, err := vitality.ClosenessVitality(ag, vitality.WithVertex("u"), vitality.WithWeight(core.Attribute("length")))
	require.NoError(t, err)
	assert.True(t, res.Single())
	assert.Equal(t, "u", res.Vertex)
	assert.Equal(t, 5.0, res.Value)
}

func TestClosenessVitality_StarAndArticulation(t *testing.T) {
	star := build(t, builder.Star(5))
	got, err := vitality.All(star)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got[builder.CenterVertexID], -1), "center disconnects the leaves")
	for _, leaf := range []string{"1", "2", "3", "4"} {
		// 16 on the full star, 9 with one leaf fewer.
		assert.Equal(t, 7.0, got[leaf], leaf)
	}

	path := build(t, builder.Path(4))
	got, err = vitality.All(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got["0"])
	assert.Equal(t, 6.0, got["3"])
	assert.True(t, math.IsInf(got["1"], -1))
	assert.True(t, math.IsInf(got["2"], -1))

	// Directed 3-cycle: any removal leaves a lone arc, not strongly connected.
	ring := build(t, builder.Cycle(3), core.WithDirected(true))
	got, err = vitality.All(ring)
	require.NoError(t, err)
	for id, v := range got {
		assert.True(t, math.IsInf(v, -1), id)
	}
}

func TestOf_AgreesWithAll(t *testing.T) {
	graphs := map[string]*core.Graph{
		"cycle5":    build(t, builder.Cycle(5)),
		"wheel6":    build(t, builder.Wheel(6)),
		"path4":     build(t, builder.Path(4)),
		"complete4": build(t, builder.Complete(4)),
		"star5":     build(t, builder.Star(5)),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			all, err := vitality.All(g)
			require.NoError(t, err)
			require.Len(t, all, g.VertexCount())

			for _, id := range g.Vertices() {
				one, err := vitality.Of(g, id)
				require.NoError(t, err)
				assert.Equal(t, all[id], one, id)

				res, err := vitality.ClosenessVitality(g, vitality.WithVertex(id))
				require.NoError(t, err)
				assert.Equal(t, all[id], res.Value, id)
			}
		})
	}
}

func TestSuppliedBaselineMatchesComputed(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
		builder.Wheel(7),
	)
	require.NoError(t, err)

	baseline, err := wiener.Index(g, wiener.WithWeight(core.EdgeWeight))
	require.NoError(t, err)

	want, err := vitality.All(g, vitality.WithWeight(core.EdgeWeight))
	require.NoError(t, err)
	got, err := vitality.All(g, vitality.WithWeight(core.EdgeWeight), vitality.WithWienerIndex(baseline))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("supplied baseline changed the result (-computed +supplied):\n%s", diff)
	}

	one, err := vitality.Of(g, builder.CenterVertexID, vitality.WithWeight(core.EdgeWeight), vitality.WithWienerIndex(baseline))
	require.NoError(t, err)
	assert.Equal(t, want[builder.CenterVertexID], one)
}

func TestAll_ParallelismDoesNotChangeResult(t *testing.T) {
	g := build(t, builder.Wheel(9))
	_, err := g.AddEdge("7", "tail", 0) // one articulation point for a −Inf entry
	require.NoError(t, err)

	want, err := vitality.All(g, vitality.WithParallelism(1))
	require.NoError(t, err)
	require.True(t, math.IsInf(want["7"], -1))

	for _, p := range []int{0, 2, 3, 64, -1, -2, -64, 1 << 20, -(1 << 20)} {
		got, err := vitality.All(g, vitality.WithParallelism(p))
		require.NoError(t, err, "parallelism %d", p)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("parallelism %d (-want +got):\n%s", p, diff)
		}
	}
}

func TestAll_DoesNotMutateSource(t *testing.T) {
	g := build(t, builder.Complete(5))
	before, edges := g.Vertices(), g.EdgeCount()

	_, err := vitality.All(g, vitality.WithParallelism(-1))
	require.NoError(t, err)
	assert.Equal(t, before, g.Vertices())
	assert.Equal(t, edges, g.EdgeCount())
}

func TestErrors(t *testing.T) {
	g := build(t, builder.Cycle(4))

	_, err := vitality.Of(g, "nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = vitality.ClosenessVitality(g, vitality.WithVertex("nope"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = vitality.All(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	var typedNil *core.Graph
	_, err = vitality.ClosenessVitality(typedNil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestAll_TaskFailureAbortsWholeCall(t *testing.T) {
	g := build(t, builder.Cycle(4))
	// Negative cost on the edges around "0": every view except G−0 fails.
	poisoned := func(e *core.Edge) float64 {
		if e.From == "0" || e.To == "0" {
			return -1
		}
		return 1
	}

	for _, p := range []int{1, -1} {
		got, err := vitality.All(g,
			vitality.WithWeight(poisoned),
			vitality.WithWienerIndex(8),
			vitality.WithParallelism(p),
		)
		require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
		assert.Nil(t, got, "no partial map")
	}

	// Without a supplied baseline the baseline itself fails.
	_, err := vitality.All(g, vitality.WithWeight(poisoned))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vitality.All(build(t, builder.Cycle(6)), vitality.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = vitality.All(build(t, builder.Cycle(6)), vitality.WithContext(ctx), vitality.WithWienerIndex(18))
	require.ErrorIs(t, err, context.Canceled)
}

type named struct {
	name string
	g    *core.Graph
}

func (n named) GraphObject() *core.Graph { return n.g }

func TestWrappedSource(t *testing.T) {
	g := build(t, builder.Cycle(4))
	direct, err := vitality.All(g)
	require.NoError(t, err)

	wrapped, err := vitality.All(named{name: "ring", g: g})
	require.NoError(t, err)
	assert.Equal(t, direct, wrapped)

	_, err = vitality.All(named{name: "empty"})
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestObservability(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := build(t, builder.Star(4))
	_, err := vitality.All(g, vitality.WithTracer(tp.Tracer("test")), vitality.WithLogger(logger), vitality.WithParallelism(2))
	require.NoError(t, err)
	_, err = vitality.Of(g, "nope", vitality.WithTracer(tp.Tracer("test")))
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "vitality.All", spans[0].Name())
	assert.Equal(t, "vitality.Of", spans[1].Name())
	assert.NotEmpty(t, spans[1].Events(), "error recorded on the span")

	assert.Contains(t, buf.String(), `"msg":"closeness vitality done"`)
	assert.Contains(t, buf.String(), `"disconnecting":1`)
	assert.Contains(t, buf.String(), `"cut_vertices":1`)
}

func TestAll_CutVerticesMatchRecomputation(t *testing.T) {
	// Two weighted triangles joined through C, with a pendant E on D.
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 2}, {"B", "C", 1}, {"C", "A", 4},
		{"C", "D", 3}, {"D", "F", 1}, {"F", "C", 1},
		{"D", "E", 5},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	fast, err := vitality.All(g, vitality.WithWeight(core.EdgeWeight))
	require.NoError(t, err)
	assert.True(t, math.IsInf(fast["C"], -1))
	assert.True(t, math.IsInf(fast["D"], -1))

	// A supplied baseline disables the shortcut, so every vertex is recomputed.
	baseline, err := wiener.Index(g, wiener.WithWeight(core.EdgeWeight))
	require.NoError(t, err)
	slow, err := vitality.All(g, vitality.WithWeight(core.EdgeWeight), vitality.WithWienerIndex(baseline))
	require.NoError(t, err)

	if diff := cmp.Diff(slow, fast); diff != "" {
		t.Errorf("shortcut mismatch (-recomputed +shortcut):\n%s", diff)
	}
}

func TestAll_EmptyAndSingleVertex(t *testing.T) {
	got, err := vitality.All(core.NewGraph())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)

	res, err := vitality.ClosenessVitality(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, res.Single(), "an empty graph still answers in all-vertex mode")
	assert.Empty(t, res.Values)

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("v"))
	got, err = vitality.All(single)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"v": 0}, got)
}
