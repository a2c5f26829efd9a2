// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} needs at least 3 vertices.
//   - Rim first (Cycle order), then spokes Center-rim[i] in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} plus hub "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := addVertex(g, methodWheel, centerVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
