// Package ansatz is a declarative toolkit for building parametrized
// quantum circuits — gate matrices, Pauli-string exponentiation and
// reusable circuit layers over interaction graphs.
//
// 🚀 What is ansatz?
//
//	A small, deterministic, zero-surprise library that brings together:
//		• Gate table: named unitary matrices (I, X, Y, Z, H, CNOT, CZ, SWAP)
//		  plus seeded random single- and two-qubit gate samplers
//		• Pauli appliers: exp(−iθ·P⊗P) for P ∈ {X,Y,Z} via the
//		  basis-change + CNOT sandwich
//		• Layers: apply a (possibly parametrized) gate to every qubit,
//		  or a two-qubit interaction across every edge of a graph
//		• Interaction graphs: weighted qubit graphs with a stable,
//		  reproducible edge order
//
// ✨ Why choose ansatz?
//
//   - Deterministic by construction – fixed edge orders, seeded RNG,
//     bit-reproducible random gates
//   - Explicit over magical – layers live in a typed registry keyed by
//     label, not in dynamically generated attributes
//   - Pure Go – no cgo, no hidden deps
//   - Backend-agnostic – any circuit type implementing the small
//     layers.Circuit interface can consume the generated layers
//
// Everything is organized under three subpackages:
//
//	gates/  — gate matrices, basis states, random gate samplers
//	layers/ — double-gate appliers, layer registry, choice sets
//	qgraph/ — weighted qubit interaction graphs + Complete(n)
//
// Quick ASCII example of a zz layer on the complete graph K_3:
//
//	q0 ──●───────●──────────
//	     │       │
//	q1 ──⊕─RZ─⊕──┼──●───────
//	             │  │
//	q2 ──────────⊕──⊕─RZ─...
//
//	go get github.com/katalvlaran/ansatz
package ansatz
