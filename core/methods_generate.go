// SPDX-License-Identifier: MIT
//
// File: methods_generate.go
// Role: Randomized generation: GenerateRandomGraph and GenerateUniqueEdge.
// Determinism:
//   - All draws come from the graph's random source over insertion-ordered
//     node lists, so a fixed seed reproduces the same graph.
// Concurrency:
//   - Each call holds the write lock for its whole duration.
// Failure model:
//   - The precondition check runs before any mutation.
//   - Generation is not transactional: if GenerateUniqueEdge runs out of
//     candidates, nodes and edges added so far stay in place.

package core

import "fmt"

// GenerateRandomGraph adds numNodes auto-labeled nodes and numEdges random
// edges between previously unconnected nodes, then links every isolated node
// to a random other node.
//
// The request is rejected with ErrInvalidRequest, before any mutation, when
// either count is negative or numEdges > numNodes*(numNodes-1). That bound
// counts ordered pairs; a graph built WithUndirectedEdgeBound uses the exact
// undirected maximum numNodes*(numNodes-1)/2 instead. Under the default bound
// a request between the two limits passes the check and fails later with
// ErrExhaustedCandidates.
//
// numNodes == 1 adds a single node and no edges. For numNodes >= 2 every node
// of the graph ends with degree >= 1. This does not make the graph connected.
func (g *Graph) GenerateRandomGraph(numNodes, numEdges int) error {
	if numNodes < 0 || numEdges < 0 {
		return fmt.Errorf("%s: nodes=%d edges=%d: %w",
			methodGenerateRandomGraph, numNodes, numEdges, ErrInvalidRequest)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if limit := g.edgeLimit(numNodes); numEdges > limit {
		return fmt.Errorf("%s: edges=%d > max=%d for nodes=%d: %w",
			methodGenerateRandomGraph, numEdges, limit, numNodes, ErrInvalidRequest)
	}

	switch numNodes {
	case 0:
		return nil
	case 1:
		g.addNodeLocked(g.unusedLabel())
		return nil
	}

	for i := 0; i < numNodes; i++ {
		g.addNodeLocked(g.unusedLabel())
	}

	for i := 0; i < numEdges; i++ {
		if _, _, err := g.generateUniqueEdgeLocked(); err != nil {
			return fmt.Errorf("%s: edge %d of %d: %w", methodGenerateRandomGraph, i+1, numEdges, err)
		}
	}

	return g.linkIsolatedLocked()
}

// GenerateUniqueEdge adds one auto-weighted edge between two nodes that are
// not yet connected and returns its endpoints in the order they were drawn.
//
// node1 is drawn uniformly from the nodes that still miss at least one
// neighbor; node2 is drawn uniformly from the remaining such nodes not yet
// connected to node1. If no such pair exists the graph is unchanged and the
// error wraps ErrExhaustedCandidates.
func (g *Graph) GenerateUniqueEdge() (string, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generateUniqueEdgeLocked()
}

// edgeLimit returns the largest edge count GenerateRandomGraph accepts for n nodes.
func (g *Graph) edgeLimit(n int) int {
	limit := n * (n - 1)
	if g.undirectedBound {
		limit /= 2
	}

	return limit
}

func (g *Graph) generateUniqueEdgeLocked() (string, string, error) {
	nodes := g.nodesLocked()
	full := len(nodes) - 1

	// Nodes already connected to everyone else cannot take a new edge.
	candidates := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if len(g.adj[n]) < full {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return "", "", fmt.Errorf("%s: %d nodes, %d edges, no open node: %w",
			methodGenerateUniqueEdge, len(nodes), len(g.edges), ErrExhaustedCandidates)
	}
	node1 := candidates[g.rng.Intn(len(candidates))]

	linked := g.neighborSetLocked(node1)
	pool := make([]string, 0, len(candidates))
	for _, n := range candidates {
		if n == node1 {
			continue
		}
		if _, ok := linked[n]; ok {
			continue
		}
		pool = append(pool, n)
	}
	if len(pool) == 0 {
		return "", "", fmt.Errorf("%s: no partner for %q: %w",
			methodGenerateUniqueEdge, node1, ErrExhaustedCandidates)
	}
	node2 := pool[g.rng.Intn(len(pool))]

	w, err := g.drawWeightLocked()
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", methodGenerateUniqueEdge, err)
	}
	g.addEdgeLocked(node1, node2, w)

	return node1, node2, nil
}

// linkIsolatedLocked gives every degree-0 node one edge to a uniformly
// random other node. Nodes are visited in insertion order.
func (g *Graph) linkIsolatedLocked() error {
	nodes := g.nodesLocked()
	if len(nodes) < 2 {
		return nil
	}
	others := make([]string, 0, len(nodes)-1)
	for _, n := range nodes {
		if len(g.adj[n]) > 0 {
			continue
		}
		others = others[:0]
		for _, m := range nodes {
			if m != n {
				others = append(others, m)
			}
		}
		partner := others[g.rng.Intn(len(others))]
		w, err := g.drawWeightLocked()
		if err != nil {
			return fmt.Errorf("%s: link %q: %w", methodGenerateRandomGraph, n, err)
		}
		g.addEdgeLocked(n, partner, w)
	}

	return nil
}

// drawWeightLocked draws an auto-weight and validates it.
func (g *Graph) drawWeightLocked() (float64, error) {
	w := g.weightFn(g.rng)
	if !validWeight(w) {
		return 0, fmt.Errorf("drawn w=%g: %w", w, ErrBadWeight)
	}

	return w, nil
}
