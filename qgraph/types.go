// SPDX-License-Identifier: MIT
// Package: ansatz/qgraph
//
// types.go — Edge, Graph, options and sentinel errors.
//
// Contract (strict):
//   • Edges are undirected and stored normalized (U < V).
//   • Weight defaults to DefaultWeight (1.0) unless WithWeight is given.
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     graph methods themselves never panic, only return sentinels.

package qgraph

import (
	"errors"
	"math"
)

// DefaultWeight is the coupling weight assumed for edges added without
// an explicit WithWeight option. Layer generators multiply this into
// their rotation angles, so 1.0 means "unscaled interaction".
const DefaultWeight = 1.0

// Sentinel errors for interaction-graph construction.
var (
	// ErrBadQubit indicates a negative qubit index was supplied.
	ErrBadQubit = errors.New("qgraph: qubit index is negative")

	// ErrSelfLoop indicates an edge from a qubit to itself was attempted.
	ErrSelfLoop = errors.New("qgraph: self-interaction not allowed")

	// ErrDuplicateEdge indicates the unordered pair already carries an edge.
	ErrDuplicateEdge = errors.New("qgraph: duplicate edge")
)

// Edge is one pairwise interaction. Endpoints are normalized so that
// U < V; Weight is the scalar coupling coefficient.
type Edge struct {
	// U is the smaller qubit index of the pair.
	U int

	// V is the larger qubit index of the pair.
	V int

	// Weight is the coupling coefficient consumed by layer generators.
	Weight float64
}

// GraphOption configures a Graph before any edges are added.
type GraphOption func(*Graph)

// WithDefaultWeight overrides the weight assigned to edges added
// without an explicit WithWeight option. Panics on NaN to surface
// programmer error early.
func WithDefaultWeight(w float64) GraphOption {
	if math.IsNaN(w) {
		panic("qgraph: WithDefaultWeight(NaN)")
	}
	return func(g *Graph) { g.defaultWeight = w }
}

// EdgeOption configures a single edge as it is added.
type EdgeOption func(*Edge)

// WithWeight sets the coupling weight for one edge. Panics on NaN.
func WithWeight(w float64) EdgeOption {
	if math.IsNaN(w) {
		panic("qgraph: WithWeight(NaN)")
	}
	return func(e *Edge) { e.Weight = w }
}

// Graph is an undirected, weighted, simple interaction graph over
// qubit indices. The zero value is not usable; construct via New,
// Complete, or the qgraph helpers.
type Graph struct {
	defaultWeight float64

	// edges holds every edge, normalized U < V. Kept unsorted here;
	// Edges() sorts a copy so reads never reorder storage.
	edges []Edge

	// index maps the normalized pair to its position in edges.
	index map[[2]int]int

	// maxQubit is the highest qubit index referenced so far, -1 when empty.
	maxQubit int
}

// New creates an empty interaction graph.
// Complexity: O(len(opts)).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		defaultWeight: DefaultWeight,
		index:         make(map[[2]int]int),
		maxQubit:      -1,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
