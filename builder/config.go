// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = decimalID        ("0","1","2",...)
//   • rng      = nil              (pure unless seeded)
//   • weightFn = ConstantWeightFn(defaultConstWeight)
//   • auto     = false            (builder draws weights itself)

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/netviz/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> label.
	idFn core.LabelFn
	// Random source for weight draws; nil means “no randomness”.
	rng *rand.Rand
	// Weight policy for emitted edges.
	weightFn core.WeightFn
	// weightNeedsRand is set for caller-supplied policies.
	weightNeedsRand bool
	// autoWeight defers every weight to the graph's own policy.
	autoWeight bool
}

const defaultConstWeight = 1.0

// centerVertexID is the fixed hub label of Star and Wheel.
const centerVertexID = "Center"

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: core.ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
