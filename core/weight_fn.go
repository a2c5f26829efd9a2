// SPDX-License-Identifier: MIT
//
// File: weight_fn.go
// Role: Auto-weight policies for edges added without an explicit distance.

package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Bounds of the default auto-weight distribution (inclusive).
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 10
)

// WeightFn draws an edge weight from rng. Implementations must return a
// positive finite value and must not retain rng.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn draws a uniformly random integer in [1,10].
func DefaultWeightFn(rng *rand.Rand) float64 {
	return float64(DefaultMinWeight + rng.Intn(DefaultMaxWeight-DefaultMinWeight+1))
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is not positive and finite.
func ConstantWeightFn(value float64) WeightFn {
	if !validWeight(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0 and finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Panics if min < 1 or max < min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(span))
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min <= 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// validWeight reports whether w is usable as an edge distance.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
