// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors are ordered by the insertion order of the connecting edges.

package core

import "sort"

// GetConnectedNodes returns every neighbor of label with the weight of the
// connecting edge. The two slices are positionally aligned: weights[i] is
// the distance between label and neighbors[i]. Entries follow edge insertion
// order. ok is false if label is not a node.
//
// Complexity: O(d log d), d = degree of label.
func (g *Graph) GetConnectedNodes(label string) (neighbors []string, weights []float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok = g.nodes[label]; !ok {
		return nil, nil, false
	}
	incident := make([]*edge, 0, len(g.adj[label]))
	for _, key := range g.adj[label] {
		incident = append(incident, g.edges[key])
	}
	sort.Slice(incident, func(i, j int) bool { return incident[i].seq < incident[j].seq })

	neighbors = make([]string, len(incident))
	weights = make([]float64, len(incident))
	for i, e := range incident {
		if e.from == label {
			neighbors[i] = e.to
		} else {
			neighbors[i] = e.from
		}
		weights[i] = e.weight
	}

	return neighbors, weights, true
}

// neighborSetLocked returns the live neighbor index of label. Callers must not mutate it.
func (g *Graph) neighborSetLocked(label string) map[string]Pair {
	return g.adj[label]
}
