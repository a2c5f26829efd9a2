// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub vertex has the fixed ID "Center".
//   - Leaves idFn(1..n-1); spokes Center-leaf in ascending leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := addVertex(g, methodStar, centerVertexID); err != nil {
			return err
		}
		leaves, err := addVertices(g, cfg, methodStar, 1, n)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
