// Package ensemble turns chain steps into observations and summaries, and
// runs independent chains in parallel.
//
// Each chain owns its partition history and its *rand.Rand, seeded from a
// base seed with SeedFor, so an ensemble of n chains is reproducible
// regardless of goroutine scheduling. The graph is shared read-only.
//
// Cross-chain aggregates that only count (seat histograms, distinct plans,
// outcomes) live in concurrent maps; floating-point sums are kept per chain
// and merged in chain order so summaries do not depend on scheduling either.
package ensemble
