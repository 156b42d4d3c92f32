// Package builder assembles deterministic graph fixtures on top of any
// core.WeightedGraph[string]: synthetic flight networks for benchmarks,
// and small regular topologies for tests and examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:   a closure that mutates a graph using the resolved config.
//     – BuildGraph:    resolves options once and applies constructors in order.
//   - Topologies:
//     – RandomFanout:  every vertex draws k random targets (self and repeat
//     targets skipped); the classic sparse airline benchmark.
//     – RandomSparse:  Erdős–Rényi G(n, p).
//     – Path, Cycle, Star, Grid.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithIDScheme, WithWeightFn.
//     – Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//     – Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: same graph backing, options, seed and constructor order
//     produce identical graphs.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//   - Undirected graphs get one edge per unordered pair; the core mirrors
//     the traversal.
//
// Vertex payloads are the string IDs produced by the ID scheme; the builder
// never looks vertices up by payload, so repeated labels are harmless.
package builder
