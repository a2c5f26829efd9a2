// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, creates g, runs cons in order.
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors wrapped with the constructor name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph resolves bopts, creates a new core.Graph with gopts, and applies
// all constructors in order.
//
// When the builder carries a random source (WithSeed/WithRand) it is also
// installed on the graph, after gopts, so auto-weights and Random draw from
// the same stream as the builder's weight policy.
//
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	opts := make([]core.GraphOption, 0, len(gopts)+1)
	opts = append(opts, gopts...)
	if cfg.rng != nil {
		opts = append(opts, core.WithRand(cfg.rng))
	}
	g := core.NewGraph(opts...)

	if err := apply(g, cfg, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// apply runs cons against g in order and stops at the first error.
func apply(g *core.Graph, cfg builderConfig, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Extend resolves opts and applies cons to an existing graph.
// Unlike BuildGraph it never installs a random source on g.
func Extend(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if err := apply(g, newBuilderConfig(opts...), cons...); err != nil {
		return fmt.Errorf("Extend: %w", err)
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)      P_n, n ≥ 2: edges i-(i+1).
// Cycle(n)     C_n, n ≥ 3: Path plus the closing edge (n-1)-0.
// Star(n)      hub "Center" plus n-1 leaves idFn(1..n-1), n ≥ 2.
// Wheel(n)     C_{n-1} plus hub "Center" with spokes, n ≥ 4.
// Complete(n)  K_n, n ≥ 1: every pair i<j once.
// Random(n,e)  core GenerateRandomGraph on the graph's random source.
