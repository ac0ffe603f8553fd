// Package accept holds the acceptance rules a chain applies to candidates
// that passed validation.
package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
)

// Rule decides whether a valid candidate replaces the current partition.
// Rules draw randomness only from rng so chains stay reproducible.
type Rule interface {
	Name() string
	Accept(current, candidate *partition.Partition, rng *rand.Rand) bool
}

// Always accepts every candidate and never touches rng.
type Always struct{}

// Name implements Rule.
func (Always) Name() string { return "always" }

// Accept implements Rule.
func (Always) Accept(_, _ *partition.Partition, _ *rand.Rand) bool { return true }

// Energy scores a partition; lower is better.
type Energy func(p *partition.Partition) float64

// Metropolis accepts downhill moves always and uphill moves with probability
// exp(−ΔE / Temperature). A non-positive Temperature accepts downhill and
// level moves only.
type Metropolis struct {
	Temperature float64
	Energy      Energy
}

// Name implements Rule.
func (Metropolis) Name() string { return "metropolis" }

// Accept implements Rule. One rng draw is made per uphill move.
func (m Metropolis) Accept(current, candidate *partition.Partition, rng *rand.Rand) bool {
	delta := m.Energy(candidate) - m.Energy(current)
	if delta <= 0 {
		return true
	}
	if m.Temperature <= 0 {
		return false
	}

	return rng.Float64() < math.Exp(-delta/m.Temperature)
}

// CutEdgeEnergy scores a partition by the size of the named cut-edge set,
// favoring compact plans. A partition without that updater scores +Inf.
func CutEdgeEnergy(updater string) Energy {
	return func(p *partition.Partition) float64 {
		set, err := p.CutEdges(updater)
		if err != nil {
			return math.Inf(1)
		}

		return float64(set.Len())
	}
}
