package ensemble

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/katalvlaran/recom/partition"
)

// seatKey is one histogram bucket.
type seatKey struct {
	party string
	seats float64
}

// partial is the per-chain floating-point state; only its chain writes it.
type partial struct {
	observations int
	seats        map[string]float64
	meanMedian   float64
	gap          float64
	cutEdges     float64
	final        []partition.DistrictID
}

// Accumulator aggregates observations from any number of chains.
// Add is safe for concurrent use as long as each chain index is fed by a
// single goroutine.
type Accumulator struct {
	observations *xsync.Counter
	outcomes     *xsync.Map[string, int]
	histogram    *xsync.Map[seatKey, int]
	plans        *xsync.Map[uint64, struct{}]
	partials     []partial
}

// NewAccumulator returns an Accumulator for chains 0..chains-1.
func NewAccumulator(chains int) *Accumulator {
	a := &Accumulator{
		observations: xsync.NewCounter(),
		outcomes:     xsync.NewMap[string, int](),
		histogram:    xsync.NewMap[seatKey, int](),
		plans:        xsync.NewMap[uint64, struct{}](),
		partials:     make([]partial, chains),
	}
	for i := range a.partials {
		a.partials[i].seats = make(map[string]float64)
	}

	return a
}

func increment(old int, _ bool) (int, xsync.ComputeOp) { return old + 1, xsync.UpdateOp }

// Add records one observation. The partition is kept as the chain's final
// plan until a later observation of the same chain replaces it.
func (a *Accumulator) Add(obs Observation, p *partition.Partition) {
	a.observations.Inc()
	a.outcomes.Compute(obs.Outcome.String(), increment)
	a.plans.Store(obs.Fingerprint, struct{}{})
	for party, s := range obs.Seats {
		a.histogram.Compute(seatKey{party: party, seats: s}, increment)
	}

	pt := &a.partials[obs.Chain]
	pt.observations++
	for party, s := range obs.Seats {
		pt.seats[party] += s
	}
	pt.meanMedian += obs.MeanMedian
	pt.gap += obs.EfficiencyGap
	pt.cutEdges += float64(obs.CutEdges)
	if p != nil {
		pt.final = p.Assignment()
	}
}

// SeatBucket is one bar of a seat histogram.
type SeatBucket struct {
	Seats float64
	Count int
}

// Summary aggregates an ensemble.
type Summary struct {
	Chains       int
	Observations int
	// Outcomes counts observations by chain.Outcome name.
	Outcomes map[string]int
	// ExpectedSeats is the mean tie-split seat count per party.
	ExpectedSeats map[string]float64
	// SeatHistogram lists, per party, how often each seat count occurred,
	// by ascending seat count.
	SeatHistogram     map[string][]SeatBucket
	MeanMeanMedian    float64
	MeanEfficiencyGap float64
	MeanCutEdges      float64
	// DistinctPlans counts plans up to relabelling.
	DistinctPlans int
	// Final holds each chain's last plan, indexed by chain.
	Final [][]partition.DistrictID
}

// Summary merges the per-chain state in chain order.
func (a *Accumulator) Summary() *Summary {
	s := &Summary{
		Chains:        len(a.partials),
		Observations:  int(a.observations.Value()),
		Outcomes:      xsync.ToPlainMap(a.outcomes),
		ExpectedSeats: make(map[string]float64),
		SeatHistogram: make(map[string][]SeatBucket),
		DistinctPlans: a.plans.Size(),
		Final:         make([][]partition.DistrictID, len(a.partials)),
	}

	var n int
	for i := range a.partials {
		pt := &a.partials[i]
		n += pt.observations
		parties := make([]string, 0, len(pt.seats))
		for party := range pt.seats {
			parties = append(parties, party)
		}
		sort.Strings(parties)
		for _, party := range parties {
			s.ExpectedSeats[party] += pt.seats[party]
		}
		s.MeanMeanMedian += pt.meanMedian
		s.MeanEfficiencyGap += pt.gap
		s.MeanCutEdges += pt.cutEdges
		s.Final[i] = pt.final
	}
	if n > 0 {
		for party := range s.ExpectedSeats {
			s.ExpectedSeats[party] /= float64(n)
		}
		s.MeanMeanMedian /= float64(n)
		s.MeanEfficiencyGap /= float64(n)
		s.MeanCutEdges /= float64(n)
	}

	a.histogram.Range(func(k seatKey, count int) bool {
		s.SeatHistogram[k.party] = append(s.SeatHistogram[k.party], SeatBucket{Seats: k.seats, Count: count})
		return true
	})
	for party := range s.SeatHistogram {
		buckets := s.SeatHistogram[party]
		sort.Slice(buckets, func(i, j int) bool { return buckets[i].Seats < buckets[j].Seats })
	}

	return s
}
