// SPDX-License-Identifier: MIT
// Package: ansatz/layers
//
// errors.go — sentinel errors for the layers package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context via %w wrapping.
//   • Unknown labels are errors, never silent no-ops.

package layers

import "errors"

// ErrUnknownLayer indicates Get was asked for a label with no
// registered layer (neither a single-qubit label nor a basis pair).
// Usage: if errors.Is(err, ErrUnknownLayer) { /* check the label */ }.
var ErrUnknownLayer = errors.New("layers: unsupported layer label")

// ErrUnknownBasis indicates DoubleGate was asked for a pair label
// outside {x,y,z}² (e.g. "za" or a wrong length).
// Usage: if errors.Is(err, ErrUnknownBasis) { /* check the pair */ }.
var ErrUnknownBasis = errors.New("layers: unsupported basis pair")
