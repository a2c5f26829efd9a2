// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle and node queries.
// Determinism:
//   - Nodes() returns labels in insertion order.
//   - Auto-labels are the first unused entry of the label sequence.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node.
//
// An empty label asks for an auto-label: the first label of the sequence
// (A..Z, AA..ZZ, AAA, ...) not currently in use is inserted and returned.
// A non-empty label is inserted as given. If the label already exists the
// graph is unchanged and AddNode returns ("", false); that is not an error.
//
// Complexity: O(1) amortized for explicit labels, O(V) for auto-labels.
func (g *Graph) AddNode(label string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if label == "" {
		label = g.unusedLabel()
	} else if _, exists := g.nodes[label]; exists {
		return "", false
	}
	g.addNodeLocked(label)

	return label, true
}

// HasNode reports whether label is a current node.
func (g *Graph) HasNode(label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[label]

	return ok
}

// Nodes returns a copy of all node labels in insertion order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodesLocked()
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of edges incident to label, or (0, false) if
// label is not a node.
func (g *Graph) Degree(label string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[label]; !ok {
		return 0, false
	}

	return len(g.adj[label]), true
}

// RemoveNode deletes label together with every incident edge.
// Incident edges are removed before the node itself, so no edge ever
// references a missing node. Returns false if label is not a node.
//
// Complexity: O(deg(label)).
func (g *Graph) RemoveNode(label string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeNodeLocked(label)
}

// RemoveRandomNode removes one node chosen uniformly at random (with its
// edges) and returns its label. It returns ErrEmptyGraph if there are no nodes.
func (g *Graph) RemoveRandomNode() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.nodes) == 0 {
		return "", fmt.Errorf("%s: %w", methodRemoveRandomNode, ErrEmptyGraph)
	}
	// Draw over the insertion-ordered list so a fixed seed picks a fixed node.
	nodes := g.nodesLocked()
	victim := nodes[g.rng.Intn(len(nodes))]
	g.removeNodeLocked(victim)

	return victim, nil
}

// addNodeLocked registers label. Caller holds the write lock and has checked absence.
func (g *Graph) addNodeLocked(label string) {
	g.nextNodeSeq++
	g.nodes[label] = g.nextNodeSeq
	g.adj[label] = make(map[string]Pair)
}

// removeNodeLocked cascades over incident edges, then drops the node.
func (g *Graph) removeNodeLocked(label string) bool {
	if _, ok := g.nodes[label]; !ok {
		return false
	}
	for _, key := range g.adj[label] {
		g.removeEdgeLocked(key)
	}
	delete(g.adj, label)
	delete(g.nodes, label)

	return true
}

// nodesLocked returns labels ordered by insertion sequence.
func (g *Graph) nodesLocked() []string {
	out := make([]string, 0, len(g.nodes))
	for label := range g.nodes {
		out = append(out, label)
	}
	sort.Slice(out, func(i, j int) bool { return g.nodes[out[i]] < g.nodes[out[j]] })

	return out
}
