// SPDX-License-Identifier: MIT
// Package: ansatz/gates
//
// options.go — functional options for the random gate samplers.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     samplers themselves never panic.
//   • Determinism is explicit: seeding happens via WithSeed or WithRand
//     per call. Sampling never reseeds or otherwise perturbs the
//     process-wide math/rand source.

package gates

import (
	"math"
	"math/rand"
)

// defaultAngleScale leaves rotation angles unscaled.
const defaultAngleScale = 1.0

// config aggregates sampler knobs; passed by value, immutable to callers.
type config struct {
	// rng is the draw source; nil means the shared math/rand default.
	rng *rand.Rand
	// angleScale multiplies the polar rotation angle θ (Random only).
	angleScale float64
}

// Option customizes a random gate sampler.
type Option func(*config)

// WithSeed derives a fresh deterministic *rand.Rand from the seed.
// Equal seeds reproduce the sampled gate bit-identically. Use this in
// tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG, e.g. one stream per worker.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gates: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAngleScale scales the polar angle θ of Random by the given
// factor (default 1). Panics on a non-finite scale.
func WithAngleScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic("gates: WithAngleScale(non-finite)")
	}
	return func(c *config) {
		c.angleScale = scale
	}
}

// newConfig applies options in order over deterministic defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{rng: nil, angleScale: defaultAngleScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// uniform draws one U[0,1) variate from the configured source.
func (c config) uniform() float64 {
	if c.rng == nil {
		return rand.Float64()
	}

	return c.rng.Float64()
}

// normal draws one N(0,1) variate from the configured source.
func (c config) normal() float64 {
	if c.rng == nil {
		return rand.NormFloat64()
	}

	return c.rng.NormFloat64()
}
