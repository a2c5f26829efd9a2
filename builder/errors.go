// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and the constructor name.
//   • Core errors (e.g. core.ErrInvalidRequest) pass through wrapped, so
//     errors.Is works against both packages.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum for
// the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a constructor needs a random source and
// none was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction step could not complete:
// a nil graph or constructor, or a label collision inside one topology.
var ErrConstructFailed = errors.New("builder: construction failed")
