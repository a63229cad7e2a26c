// SPDX-License-Identifier: MIT
// Package: ansatz/gates
//
// table.go — literal matrix definitions and the explicit gate registry.
//
// Contract:
//   • Matrices are defined once as literals and never mutated; the
//     registry stores them behind an immutable map built at init.
//   • Two-qubit matrices are registered reshaped to Shape [2,2,2,2]
//     (row-major, so Data stays the row-major 4×4).
//   • A literal whose length is neither 4 (2×2) nor 16 (4×4) is a
//     construction-time defect: init panics rather than shipping a
//     malformed table.

package gates

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownGate indicates Make was asked for a label outside the
// fixed gate set. Usage: if errors.Is(err, ErrUnknownGate) { ... }.
var ErrUnknownGate = errors.New("gates: unsupported gate label")

// sqrt2inv is 1/√2, the Hadamard and |±⟩ normalization factor.
var sqrt2inv = complex(1/math.Sqrt2, 0)

// Literal gate matrices, row-major. Single-qubit 2×2 and two-qubit 4×4.
var (
	matI = []complex128{
		1, 0,
		0, 1,
	}
	matX = []complex128{
		0, 1,
		1, 0,
	}
	matY = []complex128{
		0, -1i,
		1i, 0,
	}
	matZ = []complex128{
		1, 0,
		0, -1,
	}
	matH = []complex128{
		sqrt2inv, sqrt2inv,
		sqrt2inv, -sqrt2inv,
	}

	matCNOT = []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}
	matCZ = []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	}
	matSWAP = []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
)

// Common single-qubit states, also exposed as vector nodes below.
var (
	vecZero  = []complex128{1, 0}
	vecOne   = []complex128{0, 1}
	vecPlus  = []complex128{sqrt2inv, sqrt2inv}
	vecMinus = []complex128{sqrt2inv, -sqrt2inv}
)

// tableEntry is one registered gate: its tensor shape plus the shared
// literal backing array (copied on every Make).
type tableEntry struct {
	shape []int
	data  []complex128
}

// table maps gate label → entry. Populated once by init; read-only after.
var table map[string]tableEntry

// gateLabels fixes the registration order of the gate set.
var gateLabels = []string{"i", "x", "y", "z", "h", "cnot", "cz", "swap"}

func init() {
	literals := map[string][]complex128{
		"i":    matI,
		"x":    matX,
		"y":    matY,
		"z":    matZ,
		"h":    matH,
		"cnot": matCNOT,
		"cz":   matCZ,
		"swap": matSWAP,
	}

	table = make(map[string]tableEntry, len(gateLabels))
	for _, label := range gateLabels {
		data := literals[label]
		var shape []int
		switch len(data) {
		case 4:
			shape = []int{2, 2}
		case 16:
			// Two-qubit gates live in the table reshaped to rank four.
			shape = []int{2, 2, 2, 2}
		default:
			panic(fmt.Sprintf("gates: literal %q has length %d, want 4 or 16", label, len(data)))
		}
		table[label] = tableEntry{shape: shape, data: data}
	}
}

// Make returns a fresh node wrapping the named gate's tensor, or
// ErrUnknownGate for labels outside the fixed set. Labels are
// case-insensitive ("H" and "h" are the same gate).
//
// Each call deep-copies, so repeated calls never share storage.
// Complexity: O(1) (tensors are at most 16 entries).
func Make(name string) (*Node, error) {
	label := strings.ToLower(name)
	entry, ok := table[label]
	if !ok {
		return nil, fmt.Errorf("Make(%q): %w", name, ErrUnknownGate)
	}

	return newNode(label, entry.shape, entry.data), nil
}

// mustMake backs the fixed-gate constructors; the labels are known
// members of the table, so failure is impossible by construction.
func mustMake(label string) *Node {
	n, err := Make(label)
	if err != nil {
		panic(err)
	}

	return n
}

// I returns the identity gate node.
func I() *Node { return mustMake("i") }

// X returns the Pauli-X gate node.
func X() *Node { return mustMake("x") }

// Y returns the Pauli-Y gate node.
func Y() *Node { return mustMake("y") }

// Z returns the Pauli-Z gate node.
func Z() *Node { return mustMake("z") }

// H returns the Hadamard gate node.
func H() *Node { return mustMake("h") }

// CNOT returns the controlled-NOT gate node, Shape [2,2,2,2].
func CNOT() *Node { return mustMake("cnot") }

// CZ returns the controlled-Z gate node, Shape [2,2,2,2].
func CZ() *Node { return mustMake("cz") }

// SWAP returns the swap gate node, Shape [2,2,2,2].
func SWAP() *Node { return mustMake("swap") }

// ZeroState returns |0⟩ as a vector node, Shape [2].
func ZeroState() *Node { return newNode("zero", []int{2}, vecZero) }

// OneState returns |1⟩ as a vector node, Shape [2].
func OneState() *Node { return newNode("one", []int{2}, vecOne) }

// PlusState returns |+⟩ = (|0⟩+|1⟩)/√2 as a vector node, Shape [2].
func PlusState() *Node { return newNode("plus", []int{2}, vecPlus) }

// MinusState returns |−⟩ = (|0⟩−|1⟩)/√2 as a vector node, Shape [2].
func MinusState() *Node { return newNode("minus", []int{2}, vecMinus) }
