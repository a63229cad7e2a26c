// SPDX-License-Identifier: MIT
//
// Package layers generates reusable circuit layers: operations that
// sweep a (possibly parametrized) gate across every qubit of a
// circuit, or a parametrized two-qubit interaction across every edge
// of an interaction graph.
//
// What lives here:
//   - Circuit    — the small interface a circuit backend must satisfy
//   - DoubleGate — exp(−iθ·P⊗P) appliers for P ∈ {X,Y,Z}, built from
//     the basis-change + CNOT sandwich
//   - Layer      — a registry entry: display name, trainable flag and
//     the apply function
//   - Get        — label lookup into the explicit layer registry
//   - ChoiceSet  — an explicit, injectable default-layer configuration
//
// Registry model:
//
// Every layer lives in a typed registry keyed by its gate label and is
// looked up with Get("rx"), Get("zz"), ... The registry is populated
// once at package init by explicit loops over the known label sets —
// the four single-qubit labels (H, rx, ry, rz) plus every ordered pair
// over {x, y, z} — so the full surface is knowable at a glance and an
// unknown label is an error, never a silent no-op.
//
// Determinism:
//
// Two-qubit layers iterate qgraph.Edges(), whose order is fixed
// ascending by (U, V); the emission order of entangling gates is
// therefore reproducible for a given graph. A nil graph defaults to
// the complete graph over the circuit's qubits.
//
// Errors:
//
//	ErrUnknownLayer - Get was asked for an unregistered label.
//	ErrUnknownBasis - DoubleGate was asked for a label outside {x,y,z}².
//
// Concurrency: the registry is read-only after init. Layer application
// mutates the caller's circuit in place and is as thread-safe as that
// circuit; a ChoiceSet is plain mutable state, serialize externally.
package layers
