// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netviz/core"
)

// TestConcurrentAddEdge fans out AddEdge calls from a shared hub and
// checks every spoke lands exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := newSeeded()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			added, err := g.AddEdge(NodeX, fmt.Sprintf("V%d", id))
			assert.NoError(t, err)
			assert.True(t, added)
		}(i)
	}
	wg.Wait()

	nbs, ws, ok := g.GetConnectedNodes(NodeX)
	require.True(t, ok)
	require.Len(t, nbs, num)
	require.Len(t, ws, num)
	requireConsistent(t, g)
}

// TestConcurrentAddRemove mixes edge insertion, node removal, random
// generation, and reads; the graph must stay consistent afterwards.
func TestConcurrentAddRemove(t *testing.T) {
	g := newSeeded()
	g.AddNode("Base")

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(4 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("Base", fmt.Sprintf("N%d", id), core.WithWeight(float64(id+1)))
			assert.NoError(t, err)
		}(i)
		go func(id int) {
			defer wg.Done()
			g.RemoveNode(fmt.Sprintf("N%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_, _, err := g.GenerateUniqueEdge()
			if err != nil {
				assert.ErrorIs(t, err, core.ErrExhaustedCandidates)
			}
		}()
		go func() {
			defer wg.Done()
			_ = g.PrintAll()
			_, _, _ = g.GetConnectedNodes("Base")
			_ = g.Stats()
		}()
	}
	wg.Wait()

	requireConsistent(t, g)
}

// TestConcurrentClearAndGenerate interleaves Clear with generation; each
// GenerateRandomGraph call holds the lock throughout, so it either
// succeeds or reports exhaustion.
func TestConcurrentClearAndGenerate(t *testing.T) {
	g := newSeeded(core.WithUndirectedEdgeBound())
	var wg sync.WaitGroup
	const workers = 20
	wg.Add(2 * workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := g.GenerateRandomGraph(5, 4)
			if err != nil {
				assert.ErrorIs(t, err, core.ErrExhaustedCandidates)
			}
		}()
		go func() {
			defer wg.Done()
			g.Clear()
		}()
	}
	wg.Wait()

	requireConsistent(t, g)
}
