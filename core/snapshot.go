// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Read-only snapshots handed to renderers and diagnostic dumps.
// Determinism:
//   - Nodes and Edges follow insertion order; only ID differs between two
//     snapshots of the same state.

package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Snapshot is a detached copy of a graph's nodes and edges.
// Every edge endpoint appears in Nodes.
type Snapshot struct {
	ID    string       `json:"id"`
	Nodes []string     `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// PrintAll captures the full node list and every edge with its weight.
// It does not mutate the graph; display is up to the caller (see Snapshot.String).
func (g *Graph) PrintAll() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{
		ID:    uuid.New().String(),
		Nodes: g.nodesLocked(),
		Edges: g.edgesLocked(),
	}
}

// Weights returns the edge weights keyed by canonical unordered pair.
func (s Snapshot) Weights() map[Pair]float64 {
	out := make(map[Pair]float64, len(s.Edges))
	for _, e := range s.Edges {
		out[e.Pair()] = e.Weight
	}

	return out
}

// Dangling returns edges whose endpoints are missing from Nodes.
// A snapshot taken by PrintAll never has any.
func (s Snapshot) Dangling() []EdgeRecord {
	present := make(map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		present[n] = struct{}{}
	}
	var out []EdgeRecord
	for _, e := range s.Edges {
		_, okA := present[e.A]
		_, okB := present[e.B]
		if !okA || !okB {
			out = append(out, e)
		}
	}

	return out
}

// String renders the diagnostic dump:
//
//	Nodes: [A B C]
//	Edges:
//	A - 5 -> B
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Nodes: [%s]\n", strings.Join(s.Nodes, " "))
	sb.WriteString("Edges:\n")
	for _, e := range s.Edges {
		fmt.Fprintf(&sb, "%s - %s -> %s\n", e.A, FormatWeight(e.Weight), e.B)
	}

	return sb.String()
}

// FormatWeight prints integral weights without a fractional part (5, not 5.000000).
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
