// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); edges i-(i+1) in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
