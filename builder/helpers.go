// SPDX-License-Identifier: MIT
// Package: netviz/builder
//
// helpers.go - vertex and edge emission shared by the impl_*.go constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netviz/core"
)

// addVertices inserts idFn(from..to-1) and returns the labels in index order.
// Re-adding an existing label is a no-op, so constructors compose on one graph.
func addVertices(g *core.Graph, cfg builderConfig, method string, from, to int) ([]string, error) {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if err := addVertex(g, method, id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// addVertex inserts one fixed label. An empty label would trigger core
// auto-labeling, so it is rejected.
func addVertex(g *core.Graph, method, id string) error {
	if id == "" {
		return fmt.Errorf("%s: empty vertex id: %w", method, ErrConstructFailed)
	}
	g.AddNode(id)

	return nil
}

// addEdge emits u-v with a weight from the configured policy.
// An already present pair keeps its original weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var opts []core.EdgeOption
	if !cfg.autoWeight {
		if cfg.weightNeedsRand && cfg.rng == nil {
			return fmt.Errorf("%s: weight policy: %w", method, ErrNeedRandSource)
		}
		w := cfg.weightFn(cfg.rng)
		opts = append(opts, core.WithWeight(w))
	}
	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
