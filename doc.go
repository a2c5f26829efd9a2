// Package netviz is an in-memory registry for undirected, weighted graphs
// with randomized generation and pluggable rendering.
//
// What is in the box:
//
//	• core/    - the Graph: nodes, distance-weighted edges, neighbor queries,
//	             random removal, and GenerateRandomGraph/GenerateUniqueEdge
//	• builder/ - deterministic fixtures (Path, Cycle, Star, Wheel, Complete,
//	             Random) composed through BuildGraph
//	• render/  - circular layout with optional simplex-noise jitter and
//	             SVG, DOT, JSON and text renderers over core.Snapshot
//	• config/  - YAML run files: explicit graph, generation request,
//	             random removals and render settings
//	• cmd/netviz - the CLI: generate, build, dump, version
//
// Guarantees:
//
//   - No self-loops and at most one edge per unordered pair.
//   - Removing a node removes its edges; no edge ever outlives an endpoint.
//   - After GenerateRandomGraph(n, e) with n ≥ 2 every node has degree ≥ 1.
//   - All randomness comes from an injectable *rand.Rand; a fixed seed
//     reproduces the same graph.
//   - Every Graph method is safe for concurrent use.
//
// Quick example:
//
//	g := core.NewGraph(core.WithSeed(42))
//	g.AddEdge("A", "B", core.WithWeight(5))
//	g.AddEdge("B", "C")             // weight drawn from [1,10]
//	_ = g.GenerateRandomGraph(4, 3) // adds D..G
//	fmt.Print(g.PrintAll())
//
//	Nodes: [A B C D E F G]
//	Edges:
//	A - 5 -> B
//	...
package netviz
