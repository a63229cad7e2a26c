// SPDX-License-Identifier: MIT
//
// Package qgraph provides the weighted interaction graph used to drive
// two-qubit circuit layers: vertices are qubit indices, edges are
// pairwise interactions with a scalar coupling weight.
//
// What lives here:
//   - Graph      — undirected, weighted, simple graph over qubits 0..n-1
//   - Edge       — normalized (U < V) pair with a float64 Weight
//   - Complete   — the default K_n topology (every qubit talks to every other)
//
// Determinism is the whole point of this package: circuit construction
// routines iterate Edges(), and the order of that iteration fixes the
// order of gate emission. Edges() therefore always returns edges sorted
// ascending by (U, V), independent of insertion order. Rely on it for
// golden tests and reproducible ansätze.
//
// The graph is deliberately minimal compared to a general graph library:
// no directed edges, no multi-edges, no self-loops (a qubit does not
// interact with itself), integer vertex IDs only. Anything rejected is
// reported through sentinel errors checked via errors.Is:
//
//	ErrBadQubit       - negative qubit index.
//	ErrSelfLoop       - u == v.
//	ErrDuplicateEdge  - the unordered pair {u,v} already has an edge.
//
// Concurrency: a Graph is NOT safe for concurrent mutation. Build it
// once, then share it read-only across goroutines freely (Edges()
// returns an independent slice).
package qgraph
