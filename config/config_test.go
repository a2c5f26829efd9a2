// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netviz/config"
	"github.com/katalvlaran/netviz/core"
	"github.com/katalvlaran/netviz/render"
)

const fullRun = `
graph:
  nodes: [A, B]
  edges:
    - {a: A, b: B, weight: 5}
    - {a: B, b: C}
generate: {nodes: 4, edges: 3, seed: 42, undirected_bound: true}
remove_random: 1
render: {format: svg, width: 400, height: 300, jitter: 5, show_weights: false}
`

func writeRun(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Full(t *testing.T) {
	t.Parallel()

	run, err := config.Load(writeRun(t, fullRun))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, run.Graph.Nodes)
	require.Len(t, run.Graph.Edges, 2)
	require.NotNil(t, run.Graph.Edges[0].Weight)
	assert.Equal(t, 5.0, *run.Graph.Edges[0].Weight)
	assert.Nil(t, run.Graph.Edges[1].Weight)
	require.NotNil(t, run.Generate)
	assert.Equal(t, 4, run.Generate.Nodes)
	assert.True(t, run.Generate.UndirectedBound)
	assert.Equal(t, 1, run.RemoveRandom)

	opts := run.OutputOptions()
	assert.Equal(t, render.FormatSVG, opts.Format)
	assert.Equal(t, 400.0, opts.Width)
	assert.Equal(t, 5.0, opts.Jitter)
	assert.Equal(t, int64(42), opts.Seed)
	assert.False(t, opts.ShowWeights)
	assert.True(t, opts.ShowLabels)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeRun(t, "graph: [unclosed"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	run, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, render.FormatText, run.OutputOptions().Format)
	assert.Empty(t, run.GraphOptions())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":       "grph: {}",
		"missing endpoint":  "graph: {edges: [{a: A}]}",
		"self loop":         "graph: {edges: [{a: A, b: A}]}",
		"zero weight":       "graph: {edges: [{a: A, b: B, weight: 0}]}",
		"infinite weight":   "graph: {edges: [{a: A, b: B, weight: .inf}]}",
		"empty node":        `graph: {nodes: [""]}`,
		"negative generate": "generate: {nodes: -1, edges: 0}",
		"negative removal":  "remove_random: -2",
		"bad format":        "render: {format: png}",
		"negative jitter":   "render: {jitter: -1}",
	}
	for name, body := range tests {
		_, err := config.Parse([]byte(body))
		assert.Error(t, err, name)
	}

	_, err := config.Parse([]byte("graph: {edges: [{a: A, b: A}]}"))
	require.ErrorIs(t, err, config.ErrInvalidRun)
}

func TestRun_Apply(t *testing.T) {
	t.Parallel()

	run, err := config.Parse([]byte(fullRun))
	require.NoError(t, err)

	g, res, err := run.NewGraph(core.WithWeightFn(core.ConstantWeightFn(9)))
	require.NoError(t, err)
	require.Len(t, res.Removed, 1)
	assert.False(t, g.HasNode(res.Removed[0]))

	// A, B, C declared or implied, then D..G generated, minus one removal.
	assert.Equal(t, 6, g.NodeCount())
	if res.Removed[0] != "A" && res.Removed[0] != "B" {
		w, ok := g.GetEdgeDistance("A", "B")
		require.True(t, ok)
		assert.Equal(t, 5.0, w)
	}
	if res.Removed[0] != "B" && res.Removed[0] != "C" {
		w, ok := g.GetEdgeDistance("B", "C")
		require.True(t, ok)
		assert.Equal(t, 9.0, w, "auto weight from graph policy")
	}
	assert.Empty(t, g.PrintAll().Dangling())
}

func TestRun_ApplyReproducible(t *testing.T) {
	t.Parallel()

	run, err := config.Parse([]byte(fullRun))
	require.NoError(t, err)

	g1, r1, err := run.NewGraph()
	require.NoError(t, err)
	g2, r2, err := run.NewGraph()
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestRun_ApplyErrors(t *testing.T) {
	t.Parallel()

	run, err := config.Parse([]byte("generate: {nodes: 3, edges: 4, undirected_bound: true}"))
	require.NoError(t, err)
	_, _, err = run.NewGraph()
	require.ErrorIs(t, err, core.ErrInvalidRequest)

	run, err = config.Parse([]byte("graph: {nodes: [A]}\nremove_random: 2"))
	require.NoError(t, err)
	_, res, err := run.NewGraph()
	require.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.Equal(t, []string{"A"}, res.Removed)
}

func TestFromSnapshot_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithSeed(5))
	require.NoError(t, g.GenerateRandomGraph(6, 7))
	g.AddNode("lonely")
	snap := g.PrintAll()

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, config.FromSnapshot(snap).Save(path))

	run, err := config.Load(path)
	require.NoError(t, err)
	rebuilt, _, err := run.NewGraph()
	require.NoError(t, err)

	again := rebuilt.PrintAll()
	assert.Equal(t, snap.Nodes, again.Nodes)
	assert.Equal(t, snap.Edges, again.Edges)
}
