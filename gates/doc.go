// SPDX-License-Identifier: MIT
//
// Package gates declares the single- and two-qubit gate table: named
// unitary matrices, the common one-qubit basis states, and two seeded
// random gate samplers.
//
// What lives here:
//   - Node          — a named, owned copy of a gate tensor
//   - Make / I..SWAP — constructors for the fixed gate set
//   - ZeroState..MinusState — |0⟩, |1⟩, |+⟩, |−⟩ as vector nodes
//   - Random        — random single-qubit rotation gate
//   - RandomTwoQubit — Haar-random two-qubit unitary ("R2Q")
//
// Tensor conventions:
//   - Single-qubit gates have Shape [2,2]; two-qubit gates are exposed
//     reshaped to rank four, Shape [2,2,2,2]. Data is row-major
//     complex128, so a rank-four node's Data is byte-for-byte the
//     row-major 4×4 matrix it was reshaped from.
//   - The table itself is immutable: every constructor deep-copies, so
//     two calls never alias storage and callers may scribble on the
//     returned Data freely.
//
// Determinism:
//   - Random and RandomTwoQubit accept WithSeed/WithRand; equal seeds
//     reproduce draws bit-identically. Without a seed the process-wide
//     math/rand source is used, and no call ever reseeds it.
//
// Errors:
//
//	ErrUnknownGate - Make was asked for a label outside the fixed set.
//
// Concurrency: unseeded sampling shares the math/rand global source
// (safe, but serialize externally if you need reproducibility); the
// gate table is read-only after init and safe everywhere.
package gates
