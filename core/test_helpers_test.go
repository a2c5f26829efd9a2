// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures and assertions for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netviz/core"
)

// Common labels used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests.
const (
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
	Weight7 = 7.0
)

// Seed for every randomized test; change it and all expectations still hold.
const TestSeed = 42

// newSeeded returns an empty graph with a fixed random source.
func newSeeded(opts ...core.GraphOption) *core.Graph {
	return core.NewGraph(append([]core.GraphOption{core.WithSeed(TestSeed)}, opts...)...)
}

// mustAddEdge adds a weighted edge and fails the test if it was not inserted.
func mustAddEdge(t *testing.T, g *core.Graph, a, b string, w float64) {
	t.Helper()
	added, err := g.AddEdge(a, b, core.WithWeight(w))
	require.NoError(t, err, "AddEdge(%s,%s,%g)", a, b, w)
	require.True(t, added, "AddEdge(%s,%s,%g) not inserted", a, b, w)
}

// requireConsistent checks the structural invariants every graph must keep:
// no dangling edges, symmetric queries, and aligned neighbor/weight slices.
func requireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	snap := g.PrintAll()
	require.Empty(t, snap.Dangling(), "dangling edges")

	seen := make(map[core.Pair]struct{}, len(snap.Edges))
	for _, e := range snap.Edges {
		require.NotEqual(t, e.A, e.B, "self-loop %v", e)
		_, dup := seen[e.Pair()]
		require.False(t, dup, "duplicate edge %v", e)
		seen[e.Pair()] = struct{}{}

		require.True(t, g.EdgeExists(e.A, e.B))
		require.True(t, g.EdgeExists(e.B, e.A))
		w1, ok1 := g.GetEdgeDistance(e.A, e.B)
		w2, ok2 := g.GetEdgeDistance(e.B, e.A)
		require.True(t, ok1 && ok2)
		require.Equal(t, e.Weight, w1)
		require.Equal(t, w1, w2)
	}

	for _, n := range snap.Nodes {
		nbs, ws, ok := g.GetConnectedNodes(n)
		require.True(t, ok, "GetConnectedNodes(%s)", n)
		require.Len(t, ws, len(nbs), "alignment for %s", n)
		for i, nb := range nbs {
			w, ok := g.GetEdgeDistance(n, nb)
			require.True(t, ok)
			require.Equal(t, w, ws[i], "weight %s-%s", n, nb)
		}
		d, ok := g.Degree(n)
		require.True(t, ok)
		require.Equal(t, len(nbs), d)
	}
}
