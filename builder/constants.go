// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
)

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCompleteNodes is the smallest size of a complete graph.
const MinCompleteNodes = 1

// DefaultPopulation is the population given to every vertex when no
// population option is supplied.
const DefaultPopulation int64 = 1

// DefaultSharedPerimeter is the boundary length stamped on emitted edges.
const DefaultSharedPerimeter = 1.0
