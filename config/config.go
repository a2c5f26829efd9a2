// SPDX-License-Identifier: MIT

// Package config loads YAML run descriptions: an explicit graph, an optional
// random generation request, random removals, and render settings.
//
//	graph:
//	  nodes: [A, B]
//	  edges:
//	    - {a: A, b: B, weight: 5}
//	    - {a: B, b: C}
//	generate: {nodes: 6, edges: 8, seed: 42, undirected_bound: false}
//	remove_random: 1
//	render: {format: svg, width: 800, height: 600, jitter: 0, show_weights: true}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netviz/core"
	"github.com/katalvlaran/netviz/render"
)

// ErrInvalidRun indicates a run file that parses but cannot be applied.
var ErrInvalidRun = errors.New("config: invalid run description")

// EdgeSpec is one explicit edge. A nil Weight draws from the graph's policy.
type EdgeSpec struct {
	A      string   `yaml:"a"`
	B      string   `yaml:"b"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// GraphSpec lists nodes and edges added before generation, in order.
type GraphSpec struct {
	Nodes []string   `yaml:"nodes,omitempty"`
	Edges []EdgeSpec `yaml:"edges,omitempty"`
}

// GenerateSpec is a GenerateRandomGraph request.
type GenerateSpec struct {
	Nodes           int    `yaml:"nodes"`
	Edges           int    `yaml:"edges"`
	Seed            *int64 `yaml:"seed,omitempty"`
	UndirectedBound bool   `yaml:"undirected_bound,omitempty"`
}

// RenderSpec mirrors render.OutputOptions; zero values take render defaults.
type RenderSpec struct {
	Format      string  `yaml:"format,omitempty"`
	Width       float64 `yaml:"width,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
	Jitter      float64 `yaml:"jitter,omitempty"`
	ShowWeights *bool   `yaml:"show_weights,omitempty"`
	ShowLabels  *bool   `yaml:"show_labels,omitempty"`
}

// Run is a complete run description.
type Run struct {
	Graph        GraphSpec     `yaml:"graph,omitempty"`
	Generate     *GenerateSpec `yaml:"generate,omitempty"`
	RemoveRandom int           `yaml:"remove_random,omitempty"`
	Render       RenderSpec    `yaml:"render,omitempty"`
}

// Result reports what Apply did beyond the declared graph.
type Result struct {
	Removed []string // labels dropped by remove_random, in removal order
}

// Load reads and validates a run file.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}

	run, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return run, nil
}

// Parse decodes and validates a run description. Unknown keys are rejected
// so typos do not silently fall back to defaults.
func Parse(data []byte) (*Run, error) {
	var run Run
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}

	return &run, nil
}

// Validate checks every field that core or render would otherwise reject
// halfway through Apply.
func (r *Run) Validate() error {
	for i, n := range r.Graph.Nodes {
		if n == "" {
			return fmt.Errorf("%w: graph.nodes[%d] is empty", ErrInvalidRun, i)
		}
	}
	for i, e := range r.Graph.Edges {
		switch {
		case e.A == "" || e.B == "":
			return fmt.Errorf("%w: graph.edges[%d] needs both a and b", ErrInvalidRun, i)
		case e.A == e.B:
			return fmt.Errorf("%w: graph.edges[%d] is a self-loop on %q", ErrInvalidRun, i, e.A)
		case e.Weight != nil && (!(*e.Weight > 0) || math.IsInf(*e.Weight, 0)):
			return fmt.Errorf("%w: graph.edges[%d] weight %g must be positive and finite", ErrInvalidRun, i, *e.Weight)
		}
	}
	if g := r.Generate; g != nil && (g.Nodes < 0 || g.Edges < 0) {
		return fmt.Errorf("%w: generate counts must be non-negative", ErrInvalidRun)
	}
	if r.RemoveRandom < 0 {
		return fmt.Errorf("%w: remove_random=%d", ErrInvalidRun, r.RemoveRandom)
	}
	if err := r.OutputOptions().Validate(); err != nil {
		return fmt.Errorf("%w: render: %w", ErrInvalidRun, err)
	}
	if _, err := render.GetRenderer(r.OutputOptions().Format); err != nil {
		return fmt.Errorf("%w: render: %w", ErrInvalidRun, err)
	}

	return nil
}

// GraphOptions returns the core options implied by the generate section.
func (r *Run) GraphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if g := r.Generate; g != nil {
		if g.Seed != nil {
			opts = append(opts, core.WithSeed(*g.Seed))
		}
		if g.UndirectedBound {
			opts = append(opts, core.WithUndirectedEdgeBound())
		}
	}

	return opts
}

// OutputOptions merges the render section over render.NewDefaultOptions.
// A set generate seed also seeds the layout jitter.
func (r *Run) OutputOptions() *render.OutputOptions {
	rs := r.Render
	format := rs.Format
	if format == "" {
		format = render.FormatText
	}
	opts := render.NewDefaultOptions(format)
	if rs.Width != 0 {
		opts.Width = rs.Width
	}
	if rs.Height != 0 {
		opts.Height = rs.Height
	}
	opts.Jitter = rs.Jitter
	if rs.ShowWeights != nil {
		opts.ShowWeights = *rs.ShowWeights
	}
	if rs.ShowLabels != nil {
		opts.ShowLabels = *rs.ShowLabels
	}
	if r.Generate != nil && r.Generate.Seed != nil {
		opts.Seed = *r.Generate.Seed
	}

	return opts
}

// NewGraph creates a graph with GraphOptions plus extra and applies r to it.
func (r *Run) NewGraph(extra ...core.GraphOption) (*core.Graph, Result, error) {
	g := core.NewGraph(append(r.GraphOptions(), extra...)...)
	res, err := r.Apply(g)
	if err != nil {
		return nil, res, err
	}

	return g, res, nil
}

// Apply adds the declared nodes and edges, runs the generation request,
// then removes remove_random random nodes. It stops at the first error;
// earlier steps stay applied.
func (r *Run) Apply(g *core.Graph) (Result, error) {
	var res Result
	for _, n := range r.Graph.Nodes {
		g.AddNode(n)
	}
	for i, e := range r.Graph.Edges {
		var opts []core.EdgeOption
		if e.Weight != nil {
			opts = append(opts, core.WithWeight(*e.Weight))
		}
		if _, err := g.AddEdge(e.A, e.B, opts...); err != nil {
			return res, fmt.Errorf("graph.edges[%d]: %w", i, err)
		}
	}

	if gen := r.Generate; gen != nil {
		if err := g.GenerateRandomGraph(gen.Nodes, gen.Edges); err != nil {
			return res, fmt.Errorf("generate: %w", err)
		}
	}

	for i := 0; i < r.RemoveRandom; i++ {
		label, err := g.RemoveRandomNode()
		if err != nil {
			return res, fmt.Errorf("remove_random %d of %d: %w", i+1, r.RemoveRandom, err)
		}
		res.Removed = append(res.Removed, label)
	}

	return res, nil
}

// FromSnapshot returns a run that rebuilds snap exactly: every node and
// every edge with its weight, no generation and no removals.
func FromSnapshot(snap core.Snapshot) *Run {
	run := &Run{Graph: GraphSpec{Nodes: append([]string(nil), snap.Nodes...)}}
	run.Graph.Edges = make([]EdgeSpec, 0, len(snap.Edges))
	for _, e := range snap.Edges {
		w := e.Weight
		run.Graph.Edges = append(run.Graph.Edges, EdgeSpec{A: e.A, B: e.B, Weight: &w})
	}

	return run
}

// Save writes r to path as YAML.
func (r *Run) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling run: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}

	return nil
}
