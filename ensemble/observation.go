package ensemble

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/recom/chain"
	"github.com/katalvlaran/recom/metrics"
	"github.com/katalvlaran/recom/partition"
)

// ErrNoElection indicates a MetricSpec naming an election the partition lacks.
var ErrNoElection = errors.New("ensemble: election updater not attached")

// MetricSpec selects what an Observation measures.
type MetricSpec struct {
	// Election is the Election updater name; empty skips partisan metrics.
	Election string
	// Party is the reference party for mean-median and the first party of
	// the efficiency gap.
	Party string
	// Opponent is the second party of the efficiency gap.
	Opponent string
	// CutEdges is the CutEdges updater name (partition.CutEdgesUpdater if empty).
	CutEdges string
}

func (m MetricSpec) cutEdges() string {
	if m.CutEdges == "" {
		return partition.CutEdgesUpdater
	}

	return m.CutEdges
}

// Observation is the per-step record of one chain.
type Observation struct {
	Chain     int
	Step      int
	StepIndex int
	Outcome   chain.Outcome
	// Seats are tie-split seats per party; Wins count outright wins only.
	Seats         map[string]float64
	Wins          map[string]int
	MeanMedian    float64
	EfficiencyGap float64
	CutEdges      int
	Fingerprint   uint64
}

// Observe measures one chain step.
//
// Errors:
//   - ErrNoElection when spec.Election is set but not attached.
//   - metrics errors (unknown party, no votes) wrapped with the step index.
func Observe(chainID int, st chain.Step, spec MetricSpec) (Observation, error) {
	p := st.Partition
	obs := Observation{
		Chain:       chainID,
		Step:        st.Index,
		StepIndex:   p.StepIndex(),
		Outcome:     st.Outcome,
		Fingerprint: Fingerprint(p.Assignment()),
	}
	if set, err := p.CutEdges(spec.cutEdges()); err == nil {
		obs.CutEdges = set.Len()
	}
	if spec.Election == "" {
		return obs, nil
	}

	res, err := p.Election(spec.Election)
	if err != nil {
		return obs, fmt.Errorf("%q: %v: %w", spec.Election, err, ErrNoElection)
	}
	t := res.Tally()
	obs.Seats = make(map[string]float64, len(t.Parties))
	obs.Wins = make(map[string]int, len(t.Parties))
	for _, party := range t.Parties {
		if obs.Seats[party], err = metrics.SeatsWithTies(t, party); err != nil {
			return obs, fmt.Errorf("step %d: %w", st.Index, err)
		}
		if obs.Wins[party], err = metrics.Wins(t, party); err != nil {
			return obs, fmt.Errorf("step %d: %w", st.Index, err)
		}
	}
	if spec.Party != "" {
		if obs.MeanMedian, err = metrics.MeanMedian(t, spec.Party); err != nil {
			return obs, fmt.Errorf("step %d: %w", st.Index, err)
		}
	}
	if spec.Party != "" && spec.Opponent != "" {
		if obs.EfficiencyGap, err = metrics.EfficiencyGap(t, spec.Party, spec.Opponent); err != nil {
			return obs, fmt.Errorf("step %d: %w", st.Index, err)
		}
	}

	return obs, nil
}

// Fingerprint hashes a plan independently of its district labels: districts
// are renumbered by first appearance before hashing, so relabelled copies of
// one plan share a fingerprint.
func Fingerprint(assignment []partition.DistrictID) uint64 {
	canon := make(map[partition.DistrictID]uint32)
	buf := make([]byte, 4*len(assignment))
	for i, d := range assignment {
		c, ok := canon[d]
		if !ok {
			c = uint32(len(canon))
			canon[d] = c
		}
		binary.LittleEndian.PutUint32(buf[4*i:], c)
	}

	return xxh3.Hash(buf)
}
