// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// impl_random.go - implementation of Random(nodes, edges) constructor.
//
// Contract:
//   - Delegates to core GenerateRandomGraph, so labels come from the graph's
//     label policy and weights from the graph's weight policy; cfg.idFn and
//     cfg.weightFn are not consulted.
//   - Reproducible only when the graph has a seeded random source
//     (BuildGraph installs the builder's WithSeed/WithRand on the graph).
//   - Core sentinels (ErrInvalidRequest, ErrExhaustedCandidates) surface wrapped.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

const methodRandom = "Random"

// Random returns a Constructor that adds the given number of auto-labeled
// vertices and random edges, leaving no vertex isolated when nodes ≥ 2.
func Random(nodes, edges int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.GenerateRandomGraph(nodes, edges); err != nil {
			return fmt.Errorf("%s(%d,%d): %w", methodRandom, nodes, edges, err)
		}

		return nil
	}
}
