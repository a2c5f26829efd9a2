// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters on top of the core types.

package core

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedCount int     // nodes with degree 0
	MaxDegree     int     // 0 on an empty graph
	TotalWeight   float64 // sum of all edge distances
}

// Stats returns a consistent summary taken under a single read lock.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for label := range g.nodes {
		d := len(g.adj[label])
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	for _, e := range g.edges {
		s.TotalWeight += e.weight
	}

	return s
}

// UndirectedEdgeBound reports whether GenerateRandomGraph uses the n(n-1)/2 limit.
func (g *Graph) UndirectedEdgeBound() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirectedBound
}
