// Package core provides the Graph registry: an in-memory, undirected,
// weighted graph with string node labels and at most one edge per node pair.
//
// Storage:
//
//   - nodes: label → insertion sequence (Nodes() returns insertion order)
//   - edges: canonical Pair{A<=B} → edge record {from, to, weight, seq}
//   - adj:   label → neighbor → Pair, mirrored for both endpoints
//
// An edge and its weight are one record keyed by the unordered pair, so
// {a,b} and {b,a} always address the same entry and removal cannot leave a
// weight behind.
//
// Configuration Options (GraphOption):
//
//	– WithSeed(seed) / WithRand(r)
//	    Random source for auto-weights, RemoveRandomNode and generation.
//	    Default: time-seeded.
//	– WithWeightFn(fn)
//	    Auto-weight policy; DefaultWeightFn draws an integer in [1,10].
//	– WithLabelFn(fn)
//	    Auto-label sequence; SpreadsheetLabel yields A..Z, AA..ZZ, AAA, ...
//	– WithUndirectedEdgeBound()
//	    GenerateRandomGraph rejects more than n(n-1)/2 edges instead of n(n-1).
//
// Core Methods:
//
//	// Nodes
//	AddNode(label string) (string, bool)      // "" = auto-label; ("", false) if present
//	HasNode(label string) bool
//	RemoveNode(label string) bool             // cascades to incident edges
//	RemoveRandomNode() (string, error)        // ErrEmptyGraph on empty graph
//
//	// Edges
//	AddEdge(a, b string, opts ...EdgeOption) (bool, error) // (false, nil) if present
//	EdgeExists(a, b string) bool
//	GetEdgeDistance(a, b string) (float64, bool)
//	RemoveEdge(a, b string) bool
//
//	// Queries
//	GetConnectedNodes(a string) ([]string, []float64, bool)
//	Nodes() []string, Edges() []EdgeRecord, Weights() map[Pair]float64
//	Degree(a string) (int, bool), Stats() GraphStats
//
//	// Generation
//	GenerateRandomGraph(numNodes, numEdges int) error
//	GenerateUniqueEdge() (string, string, error)
//
//	// Maintenance
//	Clear(), Clone() *Graph, PrintAll() Snapshot
//
// Errors:
//
//	ErrEmptyLabel          - empty label passed to AddEdge.
//	ErrLoopNotAllowed      - AddEdge(a, a).
//	ErrBadWeight           - weight not positive and finite.
//	ErrEmptyGraph          - RemoveRandomNode on an empty graph.
//	ErrInvalidRequest      - impossible GenerateRandomGraph counts; nothing mutated.
//	ErrExhaustedCandidates - no unconnected pair left for GenerateUniqueEdge.
//
// Presence conflicts (adding what exists, removing or querying what does
// not) are reported through bool results, never through errors.
//
// All methods are safe for concurrent use; a single RWMutex guards the graph.
package core
