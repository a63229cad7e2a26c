package qgraph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ansatz/qgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddEdge_Validation verifies the sentinel errors for negative
// indices, self-loops and duplicate pairs.
func TestAddEdge_Validation(t *testing.T) {
	g := qgraph.New()

	assert.ErrorIs(t, g.AddEdge(-1, 2), qgraph.ErrBadQubit, "negative u must error")
	assert.ErrorIs(t, g.AddEdge(0, -3), qgraph.ErrBadQubit, "negative v must error")
	assert.ErrorIs(t, g.AddEdge(1, 1), qgraph.ErrSelfLoop, "self-loop must error")

	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(0, 1), qgraph.ErrDuplicateEdge, "same pair twice must error")
	assert.ErrorIs(t, g.AddEdge(1, 0), qgraph.ErrDuplicateEdge, "reversed pair is the same edge")
}

// TestAddEdge_NormalizationAndWeight checks U<V normalization and the
// default-weight / WithWeight policies.
func TestAddEdge_NormalizationAndWeight(t *testing.T) {
	g := qgraph.New()
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(1, 2, qgraph.WithWeight(0.5)))

	w, ok := g.Weight(0, 2)
	require.True(t, ok, "edge {0,2} must exist after AddEdge(2,0)")
	assert.Equal(t, 1.0, w, "missing WithWeight defaults to 1.0")

	w, ok = g.Weight(2, 1)
	require.True(t, ok, "weight lookup must accept reversed endpoints")
	assert.Equal(t, 0.5, w)

	_, ok = g.Weight(0, 1)
	assert.False(t, ok, "absent edge reports ok=false")
}

// TestWithDefaultWeight verifies the graph-level default applies to
// every edge added without an explicit weight.
func TestWithDefaultWeight(t *testing.T) {
	g := qgraph.New(qgraph.WithDefaultWeight(2.5))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2, qgraph.WithWeight(7)))

	w, _ := g.Weight(0, 1)
	assert.Equal(t, 2.5, w, "graph default weight applies")
	w, _ = g.Weight(0, 2)
	assert.Equal(t, 7.0, w, "per-edge option overrides the default")
}

// TestEdges_DeterministicOrder ensures Edges() sorts by (U,V) no
// matter the insertion order, and returns an independent copy.
func TestEdges_DeterministicOrder(t *testing.T) {
	g := qgraph.New()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 1))

	want := []qgraph.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 2, Weight: 1},
	}
	assert.Equal(t, want, g.Edges(), "edges sorted ascending by (U,V)")

	// Mutating the returned slice must not affect graph storage.
	es := g.Edges()
	es[0].Weight = 99
	assert.Equal(t, want, g.Edges(), "Edges() returns an independent copy")
}

// TestComplete builds K_4 and checks edge count, order and counts for
// the degenerate sizes.
func TestComplete(t *testing.T) {
	g := qgraph.Complete(4)
	assert.Equal(t, 6, g.EdgeCount(), "K_4 has 6 edges")
	assert.Equal(t, 4, g.QubitCount())

	es := g.Edges()
	require.Len(t, es, 6)
	assert.Equal(t, qgraph.Edge{U: 0, V: 1, Weight: 1}, es[0])
	assert.Equal(t, qgraph.Edge{U: 2, V: 3, Weight: 1}, es[5])

	assert.Zero(t, qgraph.Complete(0).EdgeCount(), "K_0 is empty")
	assert.Zero(t, qgraph.Complete(0).QubitCount(), "K_0 spans no qubits")
	assert.Zero(t, qgraph.Complete(1).EdgeCount(), "K_1 has no pairs")
	assert.Equal(t, 1, qgraph.Complete(1).QubitCount(), "K_1 still spans its one qubit")
	assert.Equal(t, 2, qgraph.Complete(2).QubitCount())
}

// TestOptionPanics confirms option constructors fail fast on NaN.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { qgraph.WithWeight(math.NaN()) })
	assert.Panics(t, func() { qgraph.WithDefaultWeight(math.NaN()) })
}
