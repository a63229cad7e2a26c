// SPDX-License-Identifier: MIT
// Package: ansatz/qgraph
//
// qgraph.go — edge lifecycle and queries: AddEdge/HasEdge/Weight/
// Edges/EdgeCount/QubitCount, plus the Complete(n) constructor.
//
// Determinism:
//   - Edges() returns a fresh slice sorted ascending by (U, V).
//   - Complete(n) emits pairs {i,j}, i<j, in lexicographic order.

package qgraph

import "sort"

// AddEdge records the interaction {u, v}, normalized so U < V.
//
// Steps:
//  1. Validate indices (non-negative, u != v).
//  2. Normalize the pair; reject duplicates.
//  3. Build the Edge with the graph default weight, apply opts.
//  4. Store and index it; grow the known qubit range.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) error {
	if u < 0 || v < 0 {
		return ErrBadQubit
	}
	if u == v {
		return ErrSelfLoop
	}
	if u > v {
		u, v = v, u
	}
	key := [2]int{u, v}
	if _, ok := g.index[key]; ok {
		return ErrDuplicateEdge
	}

	e := Edge{U: u, V: v, Weight: g.defaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	g.index[key] = len(g.edges)
	g.edges = append(g.edges, e)
	if v > g.maxQubit {
		g.maxQubit = v
	}

	return nil
}

// HasEdge reports whether the unordered pair {u, v} carries an edge.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	_, ok := g.index[[2]int{u, v}]

	return ok
}

// Weight returns the coupling weight of the edge {u, v} and whether
// the edge exists. Missing edges report (0, false); callers that want
// the "absent means unscaled" convention should fall back to
// DefaultWeight themselves.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u > v {
		u, v = v, u
	}
	i, ok := g.index[[2]int{u, v}]
	if !ok {
		return 0, false
	}

	return g.edges[i].Weight, true
}

// Edges returns all edges sorted ascending by (U, V) — a stable,
// deterministic order regardless of insertion sequence. The returned
// slice is an independent copy; mutating it never touches the graph.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// QubitCount returns the number of qubits spanned by the graph: the
// highest referenced index plus one (0 for a freshly-built empty
// graph). Complete(n) spans all n qubits even when n ≤ 1 yields no
// edges.
// Complexity: O(1).
func (g *Graph) QubitCount() int {
	return g.maxQubit + 1
}

// Complete returns the complete interaction graph K_n over qubits
// 0..n-1 with unit weights. Pairs are added in lexicographic (i, j)
// order with i < j, so Edges() and insertion order coincide.
//
// n <= 1 yields a graph with no edges: with fewer than two qubits
// there is nothing to entangle, and layer generators emit zero gates.
// The graph still spans all n qubits (QubitCount reports n).
//
// Complexity: O(n²) edges.
func Complete(n int, opts ...GraphOption) *Graph {
	g := New(opts...)
	// Record the full span up front so K_0/K_1 report their qubit
	// count even though no edge references them.
	if n > 0 {
		g.maxQubit = n - 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Indices are valid and distinct by construction; AddEdge
			// cannot fail here.
			_ = g.AddEdge(i, j)
		}
	}

	return g
}
