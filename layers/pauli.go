// SPDX-License-Identifier: MIT
// Package: ansatz/layers
//
// pauli.go — two-qubit Pauli-string exponentiation.
//
// Each ordered basis pair (d1, d2) over {x, y, z} gets an Applier
// realizing exp(−iθ·P₁⊗P₂) through the basis-change sandwich: rotate
// both qubits into the Z basis, conjugate an RZ by CNOTs, rotate back.
//
// Basis-change convention per qubit label:
//   x — Hadamard before and after (H is its own inverse).
//   y — RX(−π/2) before, RX(+π/2) after.
//   z — nothing; the primitive already acts in the Z basis.

package layers

import (
	"fmt"
	"math"
	"strings"
)

// halfPi is the RX angle of the y-basis change.
const halfPi = math.Pi / 2

// Applier applies one parametrized two-qubit interaction to the
// circuit, mutating it in place, and returns the same circuit handle
// for chaining.
type Applier func(c Circuit, qubit1, qubit2 int, theta float64) Circuit

// basisLabels fixes the registration order of the pair set.
var basisLabels = []byte{'x', 'y', 'z'}

// doubleGates maps pair label ("xx", "xy", ... "zz") → Applier.
// Populated once at package initialization (before any init function,
// so layers.go's registry init sees it filled); read-only after.
var doubleGates = func() map[string]Applier {
	m := make(map[string]Applier, len(basisLabels)*len(basisLabels))
	for _, d1 := range basisLabels {
		for _, d2 := range basisLabels {
			m[string([]byte{d1, d2})] = makeDoubleGate(d1, d2)
		}
	}

	return m
}()

// makeDoubleGate builds the applier for one ordered basis pair.
//
// Steps (and emission order):
//  1. Enter basis on qubit1, then qubit2.
//  2. CNOT(qubit1 → qubit2).
//  3. RZ(qubit2, theta).
//  4. CNOT(qubit1 → qubit2) again (its own inverse).
//  5. Exit basis on qubit1, then qubit2 (+π/2 where entry used −π/2).
func makeDoubleGate(d1, d2 byte) Applier {
	return func(c Circuit, qubit1, qubit2 int, theta float64) Circuit {
		enterBasis(c, qubit1, d1)
		enterBasis(c, qubit2, d2)
		c.CNOT(qubit1, qubit2)
		c.RZ(qubit2, theta)
		c.CNOT(qubit1, qubit2)
		exitBasis(c, qubit1, d1)
		exitBasis(c, qubit2, d2)

		return c
	}
}

// enterBasis rotates qubit q from the d measurement basis into Z.
func enterBasis(c Circuit, q int, d byte) {
	switch d {
	case 'x':
		c.H(q)
	case 'y':
		c.RX(q, -halfPi)
	}
}

// exitBasis undoes enterBasis.
func exitBasis(c Circuit, q int, d byte) {
	switch d {
	case 'x':
		c.H(q)
	case 'y':
		c.RX(q, halfPi)
	}
}

// DoubleGate returns the applier for the given ordered basis pair,
// e.g. "zz" or "xy". Labels are case-insensitive. Unknown pairs
// return ErrUnknownBasis.
// Complexity: O(1).
func DoubleGate(pair string) (Applier, error) {
	a, ok := doubleGates[strings.ToLower(pair)]
	if !ok {
		return nil, fmt.Errorf("DoubleGate(%q): %w", pair, ErrUnknownBasis)
	}

	return a, nil
}
