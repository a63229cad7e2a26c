// SPDX-License-Identifier: MIT
// Package: ansatz/gates
//
// linalg.go — the minimal complex linear algebra the samplers need:
// a closed-form 2×2 matrix exponential and Haar-distributed unitary
// sampling via Ginibre + Gram–Schmidt.
//
// Everything operates on row-major []complex128. The matrices here are
// at most 4×4, so no external numerics dependency is warranted.

package gates

import (
	"math"
	"math/cmplx"
)

// sincTaylorCutoff bounds |s| below which sinh(s)/s switches to its
// Taylor expansion to dodge 0/0.
const sincTaylorCutoff = 1e-12

// expm2x2 returns exp(m) for a 2×2 complex matrix via the closed form:
// split m = a·I + b with b traceless, then b² = s²·I for
// s = sqrt(-det b), and
//
//	exp(m) = e^a · (cosh(s)·I + sinh(s)/s · b).
//
// The sinh(s)/s factor degenerates gracefully as s → 0 (Taylor
// fallback), so the formula covers nilpotent b as well.
// Complexity: O(1).
func expm2x2(m []complex128) []complex128 {
	a := (m[0] + m[3]) / 2
	b := [4]complex128{m[0] - a, m[1], m[2], m[3] - a}

	detB := b[0]*b[3] - b[1]*b[2]
	s := cmplx.Sqrt(-detB)

	ea := cmplx.Exp(a)
	ch := cmplx.Cosh(s)
	var shOverS complex128
	if cmplx.Abs(s) < sincTaylorCutoff {
		shOverS = 1 + s*s/6
	} else {
		shOverS = cmplx.Sinh(s) / s
	}

	return []complex128{
		ea * (ch + shOverS*b[0]),
		ea * shOverS * b[1],
		ea * shOverS * b[2],
		ea * (ch + shOverS*b[3]),
	}
}

// haarUnitary samples a dim×dim unitary from the Haar measure on the
// unitary group. Draw a Ginibre matrix (i.i.d. complex standard
// normals), then orthonormalize its columns by modified Gram–Schmidt.
// MGS is a QR factorization whose R has a positive real diagonal, which
// is exactly the phase convention that makes Q Haar-distributed — no
// separate diagonal-phase correction is needed.
//
// normal supplies N(0,1) draws; the draw order is fixed (row-major
// matrix fill), so a seeded source reproduces the unitary exactly.
// Complexity: O(dim³).
func haarUnitary(dim int, normal func() float64) []complex128 {
	// Ginibre ensemble, row-major fill: entry (i,j) = (x + iy)/√2.
	g := make([]complex128, dim*dim)
	for i := range g {
		x := normal()
		y := normal()
		g[i] = complex(x/math.Sqrt2, y/math.Sqrt2)
	}

	// Modified Gram–Schmidt over columns, in place.
	for j := 0; j < dim; j++ {
		// Remove projections onto the already-orthonormal columns.
		for k := 0; k < j; k++ {
			var r complex128
			for i := 0; i < dim; i++ {
				r += cmplx.Conj(g[i*dim+k]) * g[i*dim+j]
			}
			for i := 0; i < dim; i++ {
				g[i*dim+j] -= r * g[i*dim+k]
			}
		}
		// Normalize column j.
		var norm float64
		for i := 0; i < dim; i++ {
			norm += real(g[i*dim+j])*real(g[i*dim+j]) + imag(g[i*dim+j])*imag(g[i*dim+j])
		}
		inv := complex(1/math.Sqrt(norm), 0)
		for i := 0; i < dim; i++ {
			g[i*dim+j] *= inv
		}
	}

	return g
}
