// SPDX-License-Identifier: MIT
// Package: ansatz/gates
//
// node.go — the Node container wrapping an owned gate tensor.

package gates

// Node is a named container around an owned copy of a gate's numeric
// tensor. Shape is [2] for state vectors, [2,2] for single-qubit gates
// and [2,2,2,2] for two-qubit gates; Data is row-major complex128.
//
// Every constructor in this package hands out a fresh deep copy, so a
// Node's Data may be mutated freely without affecting the gate table
// or any other Node.
type Node struct {
	// Name tags the node with its gate label ("h", "cnot", "R2Q", ...).
	// Random single-qubit gates are unnamed.
	Name string

	// Shape is the tensor shape, row-major over Data.
	Shape []int

	// Data holds the tensor entries.
	Data []complex128
}

// newNode builds a Node around deep copies of shape and data.
func newNode(name string, shape []int, data []complex128) *Node {
	s := make([]int, len(shape))
	copy(s, shape)
	d := make([]complex128, len(data))
	copy(d, data)

	return &Node{Name: name, Shape: s, Data: d}
}

// Clone returns an independent deep copy of the node.
func (n *Node) Clone() *Node {
	return newNode(n.Name, n.Shape, n.Data)
}

// Rank returns the number of tensor axes.
func (n *Node) Rank() int {
	return len(n.Shape)
}

// At returns the entry at the given multi-index. The index length must
// match the rank and each coordinate must be in range; out-of-contract
// access is a programmer error and panics like any slice misuse.
func (n *Node) At(idx ...int) complex128 {
	if len(idx) != len(n.Shape) {
		panic("gates: At index rank mismatch")
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= n.Shape[axis] {
			panic("gates: At index out of range")
		}
		flat = flat*n.Shape[axis] + i
	}

	return n.Data[flat]
}
