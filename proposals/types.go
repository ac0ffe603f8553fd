// Package proposals generates candidate partitions for a Markov chain.
//
// ReCom merges two adjacent districts, draws a random spanning tree of their
// union and cuts it at a population-balanced edge. RandomFlip moves a single
// boundary vertex.
//
// Proposals read the current partition and draw all randomness from the
// supplied *rand.Rand; they never mutate their input.
package proposals

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
)

// Sentinel errors for proposals.
var (
	// ErrProposalExhausted indicates that no candidate was produced within
	// the attempt budget. Chains record the step as a repeat.
	ErrProposalExhausted = errors.New("proposals: no balanced cut found")

	// ErrBadOption indicates an invalid proposal option.
	ErrBadOption = errors.New("proposals: invalid option")
)

// Outcome is the result of one Propose call.
type Outcome struct {
	// Candidate is nil when the proposal failed.
	Candidate *partition.Partition
	// Districts are the two districts that were redrawn.
	Districts [2]partition.DistrictID
	// Draws counts spanning trees drawn (0 for proposals without trees).
	Draws int
}

// Proposal produces one candidate from the current partition.
type Proposal interface {
	Name() string
	Propose(current *partition.Partition, rng *rand.Rand) (Outcome, error)
}

// cutEdges returns the ascending cut edges of p, from the named updater when
// it is attached and from scratch otherwise.
func cutEdges(p *partition.Partition, updater string) []int {
	if set, err := p.CutEdges(updater); err == nil {
		return set.Edges()
	}
	g := p.Graph()
	var out []int
	for e := 0; e < g.EdgeCount(); e++ {
		u, v := g.Endpoints(e)
		if p.DistrictOf(u) != p.DistrictOf(v) {
			out = append(out, e)
		}
	}

	return out
}
