// SPDX-License-Identifier: MIT
// Package: ansatz/layers
//
// layers.go — the layer registry and its generators.
//
// Contract:
//   • A Layer applies its gate to the whole circuit in one pass:
//     single-qubit layers sweep qubits 0..n−1 in order, two-qubit
//     layers sweep graph edges in qgraph.Edges() order.
//   • Fixed layers ignore theta; rotation layers apply 2·theta per
//     qubit; double layers apply −theta·weight·2 per edge.
//   • The registry is built once at init by explicit loops over the
//     known label sets; Get is the only lookup path.

package layers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/ansatz/qgraph"
)

// ApplyFunc applies a whole layer to the circuit. theta is the free
// parameter (ignored by non-trainable layers); g is the interaction
// graph (ignored by single-qubit layers, nil means the complete graph
// for two-qubit layers). The mutated circuit is returned for chaining.
type ApplyFunc func(c Circuit, theta float64, g *qgraph.Graph) Circuit

// Layer is one registry entry: a generated layer function tagged with
// its display name and whether it consumes a free parameter.
type Layer struct {
	// Name is the display name, "<label>layer" ("Hlayer", "zzlayer", ...).
	Name string

	// Trainable reports whether Apply depends on theta.
	Trainable bool

	// Apply performs the layer.
	Apply ApplyFunc
}

// Label sets, in registration order. Fixed layers sweep a
// parameter-free gate; rotation layers sweep a parametrized one; pair
// layers come from the doubleGates table in pauli.go.
var (
	fixedLabels    = []string{"H", "x", "y", "z"}
	rotationLabels = []string{"rx", "ry", "rz"}
)

// registry maps lowercase label → Layer. Populated once by init;
// read-only after.
var registry map[string]Layer

func init() {
	fixed := map[string]func(Circuit, int){
		"H": Circuit.H,
		"x": Circuit.X,
		"y": Circuit.Y,
		"z": Circuit.Z,
	}
	rotation := map[string]func(Circuit, int, float64){
		"rx": Circuit.RX,
		"ry": Circuit.RY,
		"rz": Circuit.RZ,
	}

	registry = make(map[string]Layer)
	for _, label := range fixedLabels {
		registry[strings.ToLower(label)] = Layer{
			Name:      label + "layer",
			Trainable: false,
			Apply:     fixedLayer(fixed[label]),
		}
	}
	for _, label := range rotationLabels {
		registry[label] = Layer{
			Name:      label + "layer",
			Trainable: true,
			Apply:     rotationLayer(rotation[label]),
		}
	}
	for _, d1 := range basisLabels {
		for _, d2 := range basisLabels {
			pair := string([]byte{d1, d2})
			registry[pair] = Layer{
				Name:      pair + "layer",
				Trainable: true,
				Apply:     doubleLayer(doubleGates[pair]),
			}
		}
	}
}

// fixedLayer sweeps a parameter-free gate over every qubit. The graph
// argument is accepted for calling-convention uniformity and ignored.
func fixedLayer(gate func(Circuit, int)) ApplyFunc {
	return func(c Circuit, _ float64, _ *qgraph.Graph) Circuit {
		for q := 0; q < c.NumQubits(); q++ {
			gate(c, q)
		}

		return c
	}
}

// rotationLayer sweeps a parametrized gate over every qubit with
// angle 2·theta.
func rotationLayer(gate func(Circuit, int, float64)) ApplyFunc {
	return func(c Circuit, theta float64, _ *qgraph.Graph) Circuit {
		for q := 0; q < c.NumQubits(); q++ {
			gate(c, q, 2*theta)
		}

		return c
	}
}

// doubleLayer sweeps a two-qubit applier over every edge of the
// interaction graph with angle −theta·weight·2; e^{−iθH} with H the
// negated weighted Pauli-string sum. A nil graph defaults to the
// complete graph over the circuit's qubits; an empty graph emits
// nothing and returns the circuit unchanged.
func doubleLayer(apply Applier) ApplyFunc {
	return func(c Circuit, theta float64, g *qgraph.Graph) Circuit {
		if g == nil {
			g = qgraph.Complete(c.NumQubits())
		}
		for _, e := range g.Edges() {
			apply(c, e.U, e.V, -theta*e.Weight*2)
		}

		return c
	}
}

// Get returns the layer registered under the given gate label
// ("H", "rx", "zz", ...). Labels are case-insensitive. Unknown labels
// return ErrUnknownLayer.
// Complexity: O(1).
func Get(label string) (Layer, error) {
	l, ok := registry[strings.ToLower(label)]
	if !ok {
		return Layer{}, fmt.Errorf("Get(%q): %w", label, ErrUnknownLayer)
	}

	return l, nil
}

// Labels returns every registered label in ascending order — a
// stable, deterministic listing for docs and tests.
// Complexity: O(L log L).
func Labels() []string {
	out := make([]string, 0, len(registry))
	for label := range registry {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}
