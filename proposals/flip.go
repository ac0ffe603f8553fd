package proposals

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
)

// RandomFlip moves one endpoint of a uniformly chosen cut edge into the
// district of the other endpoint. It preserves neither balance nor
// contiguity; pair it with a validator that checks both.
type RandomFlip struct {
	cutUpdater string
}

// NewRandomFlip returns a RandomFlip reading the named cut-edge updater,
// or partition.CutEdgesUpdater when name is empty.
func NewRandomFlip(name string) *RandomFlip {
	if name == "" {
		name = partition.CutEdgesUpdater
	}

	return &RandomFlip{cutUpdater: name}
}

// Name implements Proposal.
func (f *RandomFlip) Name() string { return "random_flip" }

// Propose implements Proposal. Flipping the only vertex of a district would
// change the district count and yields ErrProposalExhausted instead.
func (f *RandomFlip) Propose(p *partition.Partition, rng *rand.Rand) (Outcome, error) {
	cut := cutEdges(p, f.cutUpdater)
	if len(cut) == 0 {
		return Outcome{}, fmt.Errorf("no cut edges: %w", ErrProposalExhausted)
	}
	u, v := p.Graph().Endpoints(cut[rng.Intn(len(cut))])
	if rng.Intn(2) == 1 {
		u, v = v, u
	}
	from, to := p.DistrictOf(u), p.DistrictOf(v)
	out := Outcome{Districts: [2]partition.DistrictID{from, to}}
	if p.Size(from) == 1 {
		return out, fmt.Errorf("district %d would vanish: %w", from, ErrProposalExhausted)
	}
	child, err := p.Flip([]partition.Flip{{Node: u, To: to}})
	if err != nil {
		return out, err
	}
	out.Candidate = child

	return out, nil
}
