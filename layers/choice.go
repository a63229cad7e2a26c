// SPDX-License-Identifier: MIT
// Package: ansatz/layers
//
// choice.go — the default-layer choice set.
//
// Design:
//   • A ChoiceSet is an explicit configuration value handed to ansatz
//     construction code — not a package-wide global. Callers own it
//     and decide its lifetime.
//   • Set with no arguments restores the canonical default quartet;
//     Set with arguments replaces the selection verbatim, no
//     validation (callers may register custom layers).

package layers

// defaultChoiceLabels is the canonical default selection, in order:
// a Hadamard spread, X- and Z-axis rotations, and a ZZ interaction.
var defaultChoiceLabels = []string{"H", "rx", "rz", "zz"}

// ChoiceSet holds the ordered layer selection used when an ansatz
// routine needs "the default layers". The zero value is empty;
// construct via NewChoiceSet.
type ChoiceSet struct {
	layers []Layer
}

// DefaultLayers returns the canonical selection [Hlayer, rxlayer,
// rzlayer, zzlayer], freshly assembled from the registry.
func DefaultLayers() []Layer {
	out := make([]Layer, 0, len(defaultChoiceLabels))
	for _, label := range defaultChoiceLabels {
		// Labels are registry members by construction; Get cannot fail.
		l, _ := Get(label)
		out = append(out, l)
	}

	return out
}

// NewChoiceSet builds a choice set. With no arguments it starts from
// the canonical defaults; otherwise it adopts the given layers
// verbatim.
func NewChoiceSet(layers ...Layer) *ChoiceSet {
	s := &ChoiceSet{}
	s.Set(layers...)

	return s
}

// Set replaces the selection. No arguments resets to DefaultLayers();
// otherwise the given layers are copied in verbatim, unvalidated.
func (s *ChoiceSet) Set(layers ...Layer) {
	if len(layers) == 0 {
		s.layers = DefaultLayers()
		return
	}
	s.layers = append([]Layer(nil), layers...)
}

// Layers returns the current selection as an independent slice.
func (s *ChoiceSet) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}
