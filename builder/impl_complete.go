// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// impl_complete.go: Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}

		// Lexicographic (i,j) order keeps weight draws reproducible.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
