// Package builder assembles deterministic core.Graph fixtures from small
// topology constructors.
//
// A Constructor is a closure over its size parameters; BuildGraph resolves
// BuilderOptions into one config, creates the graph and runs constructors in
// order, so several topologies can be laid onto one graph:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithUndirectedEdgeBound()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithLetterIDs()},
//		builder.Cycle(5),
//		builder.Random(3, 2),
//	)
//
// Constructors:
//   - Path, Cycle, Star, Wheel, Complete: fixed topologies over idFn labels.
//   - Random: the core generator (GenerateRandomGraph) as a constructor.
//
// Options:
//   - WithIDScheme, WithLetterIDs: vertex labels (default "0","1",...).
//   - WithSeed, WithRand: random source for weights and for the graph.
//   - WithWeightFn, WithConstantWeight, WithAutoWeights: edge weights
//     (default constant 1).
//
// Option constructors panic on meaningless input; constructors return
// sentinel errors (ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed)
// or wrapped core errors.
package builder
