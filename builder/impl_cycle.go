// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need a loop or a
//     parallel edge, neither of which core allows.
//   - Edges i-((i+1) mod n) in ascending i, so the closing edge comes last.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
