// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/netviz/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn core.LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithLetterIDs labels vertices A, B, …, Z, AA, … (core.SpreadsheetLabel).
func WithLetterIDs() BuilderOption {
	return WithIDScheme(core.SpreadsheetLabel)
}

// WithRand provides an explicit random source.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight policy. fn draws from the
// builder's random source, so constructors report ErrNeedRandSource unless
// WithSeed or WithRand is also set. Panics on nil.
func WithWeightFn(fn core.WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.weightNeedsRand = true
		c.autoWeight = false
	}
}

// WithConstantWeight gives every emitted edge weight w.
// Panics if w is not positive and finite.
func WithConstantWeight(w float64) BuilderOption {
	fn := core.ConstantWeightFn(w)
	return func(c *builderConfig) {
		c.weightFn = fn
		c.weightNeedsRand = false
		c.autoWeight = false
	}
}

// WithAutoWeights leaves every weight to the graph's own policy
// (core.WithWeightFn, DefaultWeightFn if unset).
func WithAutoWeights() BuilderOption {
	return func(c *builderConfig) { c.autoWeight = true }
}
