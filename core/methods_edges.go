// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Determinism:
//   - Edges() returns records in insertion order.
//   - Auto-weights are drawn from the graph's random source only when an edge is inserted.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects a and b.
//
// If an edge between a and b already exists, in either orientation, AddEdge
// is a no-op and returns (false, nil); a supplied weight is ignored.
// Otherwise missing endpoints are created, the weight is taken from
// WithWeight or drawn from the graph's WeightFn, and (true, nil) is returned.
//
// Errors (graph unchanged):
//   - ErrEmptyLabel if a or b is empty.
//   - ErrLoopNotAllowed if a == b.
//   - ErrBadWeight if the weight is not positive and finite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, opts ...EdgeOption) (bool, error) {
	if a == "" || b == "" {
		return false, fmt.Errorf("%s(%q,%q): %w", methodAddEdge, a, b, ErrEmptyLabel)
	}
	if a == b {
		return false, fmt.Errorf("%s(%q,%q): %w", methodAddEdge, a, b, ErrLoopNotAllowed)
	}
	var p edgeParams
	for _, opt := range opts {
		opt(&p)
	}
	if p.hasWeight && !validWeight(p.weight) {
		return false, fmt.Errorf("%s(%q,%q): w=%g: %w", methodAddEdge, a, b, p.weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.edges[MakePair(a, b)]; exists {
		return false, nil
	}
	w := p.weight
	if !p.hasWeight {
		var err error
		if w, err = g.drawWeightLocked(); err != nil {
			return false, fmt.Errorf("%s(%q,%q): %w", methodAddEdge, a, b, err)
		}
	}
	g.addEdgeLocked(a, b, w)

	return true, nil
}

// EdgeExists reports whether a and b are connected, in either orientation.
// Complexity: O(1).
func (g *Graph) EdgeExists(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[MakePair(a, b)]

	return ok
}

// GetEdgeDistance returns the weight of the edge between a and b, or
// (0, false) if there is none. Orientation does not matter.
func (g *Graph) GetEdgeDistance(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[MakePair(a, b)]
	if !ok {
		return 0, false
	}

	return e.weight, true
}

// RemoveEdge deletes the edge between a and b. The edge and its weight are a
// single record, so they disappear together. Returns false if no edge exists.
func (g *Graph) RemoveEdge(a, b string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := MakePair(a, b)
	if _, ok := g.edges[key]; !ok {
		return false
	}
	g.removeEdgeLocked(key)

	return true
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []EdgeRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Weights returns a fresh map from canonical pair to weight.
func (g *Graph) Weights() map[Pair]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[Pair]float64, len(g.edges))
	for key, e := range g.edges {
		out[key] = e.weight
	}

	return out
}

// addEdgeLocked inserts a validated, absent edge and creates missing endpoints.
func (g *Graph) addEdgeLocked(a, b string, w float64) {
	if _, ok := g.nodes[a]; !ok {
		g.addNodeLocked(a)
	}
	if _, ok := g.nodes[b]; !ok {
		g.addNodeLocked(b)
	}
	key := MakePair(a, b)
	g.nextEdgeSeq++
	g.edges[key] = &edge{from: a, to: b, weight: w, seq: g.nextEdgeSeq}
	g.adj[a][b] = key
	g.adj[b][a] = key
}

// removeEdgeLocked drops an existing edge and both adjacency mirrors.
func (g *Graph) removeEdgeLocked(key Pair) {
	delete(g.edges, key)
	delete(g.adj[key.A], key.B)
	delete(g.adj[key.B], key.A)
}

// sortedEdgesLocked returns stored edges ordered by insertion sequence.
func (g *Graph) sortedEdgesLocked() []*edge {
	out := make([]*edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// edgesLocked returns insertion-ordered copies of all edges.
func (g *Graph) edgesLocked() []EdgeRecord {
	sorted := g.sortedEdgesLocked()
	out := make([]EdgeRecord, len(sorted))
	for i, e := range sorted {
		out[i] = EdgeRecord{A: e.from, B: e.to, Weight: e.weight}
	}

	return out
}
