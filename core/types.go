// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Pair, edge records, sentinel errors, GraphOption/EdgeOption and NewGraph.
// Concurrency:
//   - A single RWMutex (mu) guards every catalog and the random source.
//   - Readers share mu; mutations and random draws hold it exclusively.

package core

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates an operation received an empty node label.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrLoopNotAllowed indicates an edge from a node to itself was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a supplied edge weight that is not a positive finite number.
	ErrBadWeight = errors.New("core: edge weight must be positive and finite")

	// ErrEmptyGraph indicates an operation that needs at least one node ran on an empty graph.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrInvalidRequest indicates GenerateRandomGraph received an impossible node/edge count.
	ErrInvalidRequest = errors.New("core: impossible node/edge configuration")

	// ErrExhaustedCandidates indicates GenerateUniqueEdge found no pair of nodes
	// that is not already connected.
	ErrExhaustedCandidates = errors.New("core: no unconnected node pair left")
)

// Method tags used to prefix wrapped errors.
const (
	methodAddEdge             = "AddEdge"
	methodRemoveRandomNode    = "RemoveRandomNode"
	methodGenerateRandomGraph = "GenerateRandomGraph"
	methodGenerateUniqueEdge  = "GenerateUniqueEdge"
)

// Pair is the canonical key of an undirected edge: A <= B lexicographically.
// Build it with MakePair so {a,b} and {b,a} map to the same key.
type Pair struct {
	A string
	B string
}

// MakePair returns the canonical Pair for the unordered endpoints a and b.
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Other returns the endpoint of p that is not label.
// The result is meaningless if label is not an endpoint of p.
func (p Pair) Other(label string) string {
	if p.A == label {
		return p.B
	}

	return p.A
}

// Has reports whether label is one of the endpoints of p.
func (p Pair) Has(label string) bool {
	return p.A == label || p.B == label
}

// EdgeRecord is a read-only copy of one edge as it was inserted.
// A and B keep the orientation given to AddEdge; Weight is the distance.
type EdgeRecord struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Weight float64 `json:"weight"`
}

// Pair returns the canonical key of the record.
func (r EdgeRecord) Pair() Pair { return MakePair(r.A, r.B) }

// edge is the stored form; seq orders edges by insertion.
type edge struct {
	from, to string
	weight   float64
	seq      uint64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithRand installs the random source used for auto-weights, random removal
// and generation. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) GraphOption {
	if r == nil {
		panic("core: WithRand(nil)")
	}
	return func(g *Graph) { g.rng = r }
}

// WithSeed installs a deterministic random source seeded with seed.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the auto-weight policy used when AddEdge gets no weight.
// Panics on nil.
func WithWeightFn(fn WeightFn) GraphOption {
	if fn == nil {
		panic("core: WithWeightFn(nil)")
	}
	return func(g *Graph) { g.weightFn = fn }
}

// WithLabelFn overrides the auto-label sequence used by AddNode("").
// Panics on nil.
func WithLabelFn(fn LabelFn) GraphOption {
	if fn == nil {
		panic("core: WithLabelFn(nil)")
	}
	return func(g *Graph) { g.labelFn = fn }
}

// WithUndirectedEdgeBound makes GenerateRandomGraph reject edge counts above
// n(n-1)/2 instead of the default n(n-1).
func WithUndirectedEdgeBound() GraphOption {
	return func(g *Graph) { g.undirectedBound = true }
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeParams)

type edgeParams struct {
	weight    float64
	hasWeight bool
}

// WithWeight supplies an explicit distance for the new edge.
// AddEdge rejects non-positive or non-finite values with ErrBadWeight.
func WithWeight(w float64) EdgeOption {
	return func(p *edgeParams) {
		p.weight = w
		p.hasWeight = true
	}
}

// Graph is an undirected, weighted graph without loops or parallel edges.
//
// Nodes and edges both remember insertion order. Edges are keyed by the
// canonical Pair of their endpoints, so an edge and its weight live in one
// record. adj mirrors every edge in both directions for O(1) membership.
type Graph struct {
	mu sync.RWMutex

	rng             *rand.Rand
	weightFn        WeightFn
	labelFn         LabelFn
	undirectedBound bool

	nextNodeSeq uint64
	nextEdgeSeq uint64
	nodes       map[string]uint64          // label → insertion sequence
	edges       map[Pair]*edge             // canonical pair → edge
	adj         map[string]map[string]Pair // label → neighbor → edge key
}

// NewGraph creates an empty Graph and applies opts in order.
// Defaults: time-seeded random source, DefaultWeightFn, SpreadsheetLabel.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		weightFn: DefaultWeightFn,
		labelFn:  SpreadsheetLabel,
	}
	g.reset()
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// reset allocates empty catalogs. Caller holds mu (or owns g exclusively).
func (g *Graph) reset() {
	g.nextNodeSeq = 0
	g.nextEdgeSeq = 0
	g.nodes = make(map[string]uint64)
	g.edges = make(map[Pair]*edge)
	g.adj = make(map[string]map[string]Pair)
}
