// SPDX-License-Identifier: MIT
// Package: ansatz/layers
//
// circuit.go — the external circuit collaborator.

package layers

// Circuit is the surface a circuit backend must expose for layer
// generation. Gate methods mutate the circuit in place: fixed gates
// take a qubit index, rotations take an index plus an angle, and CNOT
// takes control and target. Indices are 0-based and must be smaller
// than NumQubits; enforcing that is the backend's business, not ours.
//
// Any statevector simulator, gate-list recorder or hardware
// transpiler satisfying these nine methods can consume the generated
// layers unchanged.
type Circuit interface {
	// NumQubits returns the number of qubits the circuit spans.
	NumQubits() int

	// H applies a Hadamard to qubit q.
	H(q int)

	// X applies a Pauli-X to qubit q.
	X(q int)

	// Y applies a Pauli-Y to qubit q.
	Y(q int)

	// Z applies a Pauli-Z to qubit q.
	Z(q int)

	// RX rotates qubit q about the X axis by theta.
	RX(q int, theta float64)

	// RY rotates qubit q about the Y axis by theta.
	RY(q int, theta float64)

	// RZ rotates qubit q about the Z axis by theta.
	RZ(q int, theta float64)

	// CNOT applies a controlled-NOT from control to target.
	CNOT(control, target int)
}
