package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netviz/core"
)

// execute runs the root command with args and returns stdout and stderr.
// Flag variables are reset first because cobra keeps them between runs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	debugFlag = false
	genNodes, genEdges, genSeed = 8, 10, 0
	genStrictBound, genRemoveRandom, genSave = false, 0, ""
	runFile = ""
	outFormat, outPath = "", ""
	outWidth, outHeight, outJitter = 0, 0, 0

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestRootCommand tests that the root command is properly configured
func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "netviz", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "build", "dump", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

// TestCommandsHaveRunE tests that every working command reports errors
func TestCommandsHaveRunE(t *testing.T) {
	for _, c := range []*cobra.Command{generateCmd, buildCmd, dumpCmd} {
		assert.NotNil(t, c.RunE, "%s.RunE should not be nil", c.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "netviz "+Version+"\n", out)
}

func TestGenerate_Text(t *testing.T) {
	out, _, err := execute(t, "generate", "--nodes", "5", "--edges", "4", "--seed", "42")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Nodes: [A B C D E]\nEdges:\n"), out)
	assert.GreaterOrEqual(t, strings.Count(out, " -> "), 4)

	again, _, err := execute(t, "generate", "--nodes", "5", "--edges", "4", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same output")
}

func TestGenerate_InvalidRequest(t *testing.T) {
	_, _, err := execute(t, "generate", "--nodes", "3", "--edges", "4", "--seed", "1", "--strict-bound")
	require.ErrorIs(t, err, core.ErrInvalidRequest)

	_, _, err = execute(t, "generate", "--nodes", "3", "--edges", "10", "--seed", "1")
	require.ErrorIs(t, err, core.ErrInvalidRequest)

	_, _, err = execute(t, "generate", "--nodes", "3", "--edges", "4", "--seed", "1")
	require.ErrorIs(t, err, core.ErrExhaustedCandidates)
}

func TestGenerate_RemoveRandomAndSave(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "saved.yaml")
	out, logs, err := execute(t, "generate", "--nodes", "6", "--edges", "6", "--seed", "3",
		"--remove-random", "2", "--save", saved)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(logs, "Removed random node"))

	dumped, _, err := execute(t, "dump", "-f", saved)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dumped, out), "dump of saved run reproduces the graph")
	assert.Contains(t, dumped, "Stats: nodes=4")
}

func TestGenerate_SVGToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.svg")
	out, logs, err := execute(t, "generate", "--nodes", "4", "--edges", "3", "--seed", "9",
		"--format", "svg", "--jitter", "4", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Wrote svg")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "<circle"))
}

func TestBuild(t *testing.T) {
	run := writeFile(t, "run.yaml", `
graph:
  edges:
    - {a: A, b: B, weight: 5}
    - {a: B, b: C, weight: 2}
render: {format: dot}
`)
	out, _, err := execute(t, "build", "-f", run)
	require.NoError(t, err)
	assert.Contains(t, out, `"A" -- "B" [label="5", weight=5];`)
	assert.Contains(t, out, `"B" -- "C" [label="2", weight=2];`)

	out, _, err = execute(t, "build", "-f", run, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "Nodes: [A B C]\nEdges:\nA - 5 -> B\nB - 2 -> C\n", out)

	_, _, err = execute(t, "build", "-f", run, "--format", "gif")
	require.Error(t, err)
}

func TestBuild_BadRunFile(t *testing.T) {
	run := writeFile(t, "bad.yaml", "graph: {edges: [{a: A, b: A}]}")
	_, _, err := execute(t, "build", "-f", run)
	require.Error(t, err)

	_, _, err = execute(t, "build", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	run := writeFile(t, "run.yaml", `
graph:
  nodes: [X]
  edges:
    - {a: A, b: B, weight: 1.5}
`)
	out, _, err := execute(t, "--debug", "dump", "-f", run)
	require.NoError(t, err)
	assert.Equal(t,
		"Nodes: [X A B]\nEdges:\nA - 1.5 -> B\nStats: nodes=3 edges=1 isolated=1 max_degree=1 total_weight=1.5\n",
		out)
}
