// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps node and edge sequence numbers, so insertion order survives.
//   - The clone's random source is seeded from the original's, so a seeded
//     graph yields a reproducible clone.
// Concurrency:
//   - Both take the write lock: Clear mutates, Clone draws from the random source.

package core

import "math/rand"

// Clear resets the graph to empty: nodes, edges, weights and sequence
// counters. Options and the random source are preserved.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

// Clone returns a deep copy with the same options and contents.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	clone := &Graph{
		rng:             rand.New(rand.NewSource(g.rng.Int63())),
		weightFn:        g.weightFn,
		labelFn:         g.labelFn,
		undirectedBound: g.undirectedBound,
		nextNodeSeq:     g.nextNodeSeq,
		nextEdgeSeq:     g.nextEdgeSeq,
		nodes:           make(map[string]uint64, len(g.nodes)),
		edges:           make(map[Pair]*edge, len(g.edges)),
		adj:             make(map[string]map[string]Pair, len(g.adj)),
	}
	for label, seq := range g.nodes {
		clone.nodes[label] = seq
		clone.adj[label] = make(map[string]Pair, len(g.adj[label]))
	}
	for key, e := range g.edges {
		ne := *e
		clone.edges[key] = &ne
		clone.adj[key.A][key.B] = key
		clone.adj[key.B][key.A] = key
	}

	return clone
}
