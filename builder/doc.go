// Package builder provides reusable “functional‐options”‐style constructors
// for small population graphs: fixtures for tests, examples and benchmarks of
// the districting chain.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     - BuilderOption:     a function that mutates builderConfig before use.
//     - builderConfig:     holds RNG, ID‐scheme, population and affiliation generators.
//   - Vertex‐ID schemes (IDFn implementations):
//     - DefaultIDFn:       decimal strings ("0","1",…).
//     - SymbolIDFn:        single letters ("A","B",…).
//     - ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     - PrefixIDFn:        prefixed decimals ("u0","u1",…).
//   - Vertex attributes:
//     - WithUniformPopulation, WithRandomPopulation, WithPopulationFn.
//     - WithAffiliations (round-robin labels), WithAffiliationFn.
//   - Topologies: Path, Cycle, Complete.
//
// Lattices with rook/queen adjacency and voter layouts live in gridgraph.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping sentinels for invalid build parameters.
//   - Deterministic output for equal options, seed and constructor order.
package builder
