// SPDX-License-Identifier: MIT
//
// File: updaters.go
// Role: The closed set of updaters and their bindings to a graph.
// Policy:
//   - Updater is sealed: only the variants in this package satisfy it.
//   - An Updater is a stateless description; everything that depends on the
//     graph lives in the binding New creates, so one Updater value may be
//     shared by many chains.
//   - Every binding's incremental update must equal its from-scratch compute.

package partition

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/metrics"
)

// Updater is a named quantity maintained for every partition of a chain.
//
// The set of variants is closed: Tally, CutEdges, Election and StepIndex.
type Updater interface {
	// Name is the key the value is stored under.
	Name() string

	bind(g *core.Graph, k int) (binding, error)
}

// binding is an Updater bound to one graph and district count.
type binding interface {
	compute(p *Partition) any
	update(parent, child *Partition, prev any) any
	equal(a, b any) bool
}

// ---------------------------------------------------------------------------
// Tally
// ---------------------------------------------------------------------------

// DistrictTotals is a per-district sum indexed by DistrictID. Read-only.
type DistrictTotals []int64

// Sum returns the total over all districts.
func (t DistrictTotals) Sum() int64 {
	var s int64
	for _, v := range t {
		s += v
	}

	return s
}

// Tally sums a numeric vertex attribute per district.
type Tally struct {
	Attribute string
	Alias     string
}

// NewTally returns a Tally of attribute stored under the attribute's name.
func NewTally(attribute string) *Tally { return &Tally{Attribute: attribute} }

// NewPopulationTally tallies vertex populations under "population".
func NewPopulationTally() *Tally { return NewTally(core.PopulationAttribute) }

// Name implements Updater.
func (t *Tally) Name() string {
	if t.Alias != "" {
		return t.Alias
	}

	return t.Attribute
}

func (t *Tally) bind(g *core.Graph, k int) (binding, error) {
	weights := make([]int64, g.VertexCount())
	found := false
	for v := range weights {
		w, ok := g.Attribute(v, t.Attribute)
		weights[v] = w
		found = found || ok
	}
	if !found {
		return nil, fmt.Errorf("%q: %w", t.Attribute, ErrUnknownAttribute)
	}

	return &tallyBinding{weights: weights, k: k}, nil
}

type tallyBinding struct {
	weights []int64
	k       int
}

func (b *tallyBinding) compute(p *Partition) any {
	out := make(DistrictTotals, b.k)
	for v, d := range p.assignment {
		out[d] += b.weights[v]
	}

	return out
}

func (b *tallyBinding) update(parent, child *Partition, prev any) any {
	out := append(DistrictTotals(nil), prev.(DistrictTotals)...)
	for _, f := range child.flips {
		w := b.weights[f.Node]
		out[parent.assignment[f.Node]] -= w
		out[f.To] += w
	}

	return out
}

func (b *tallyBinding) equal(x, y any) bool {
	a, c := x.(DistrictTotals), y.(DistrictTotals)
	if len(a) != len(c) {
		return false
	}
	for i := range a {
		if a[i] != c[i] {
			return false
		}
	}

	return true
}

// ---------------------------------------------------------------------------
// CutEdges
// ---------------------------------------------------------------------------

// CutEdgeSet is the set of edges whose endpoints lie in different districts.
type CutEdgeSet struct {
	cut   []bool // indexed by global edge index
	count int
}

// Len returns the number of cut edges.
func (s *CutEdgeSet) Len() int { return s.count }

// Contains reports whether edge e is cut.
func (s *CutEdgeSet) Contains(e int) bool { return e >= 0 && e < len(s.cut) && s.cut[e] }

// Edges returns the cut edge indices in ascending order.
func (s *CutEdgeSet) Edges() []int {
	out := make([]int, 0, s.count)
	for e, c := range s.cut {
		if c {
			out = append(out, e)
		}
	}

	return out
}

// CutEdges tracks the cut edges of a partition, optionally restricted to
// orthogonal (rook) adjacency.
type CutEdges struct {
	name     string
	rookOnly bool
}

// NewCutEdges tracks every cut edge under "cut_edges".
func NewCutEdges() *CutEdges { return &CutEdges{name: CutEdgesUpdater} }

// NewRookCutEdges tracks cut orthogonal edges only, under "rook_cut_edges".
func NewRookCutEdges() *CutEdges { return &CutEdges{name: RookCutEdgesUpdater, rookOnly: true} }

// Name implements Updater.
func (c *CutEdges) Name() string { return c.name }

// RookOnly reports whether diagonal edges are ignored.
func (c *CutEdges) RookOnly() bool { return c.rookOnly }

func (c *CutEdges) bind(g *core.Graph, _ int) (binding, error) {
	return &cutBinding{g: g, rookOnly: c.rookOnly}, nil
}

type cutBinding struct {
	g        *core.Graph
	rookOnly bool
}

func (b *cutBinding) counts(e int) bool {
	return !b.rookOnly || b.g.Edge(e).Kind == core.Orthogonal
}

func (b *cutBinding) compute(p *Partition) any {
	s := &CutEdgeSet{cut: make([]bool, b.g.EdgeCount())}
	for e := range s.cut {
		u, v := b.g.Endpoints(e)
		if b.counts(e) && p.assignment[u] != p.assignment[v] {
			s.cut[e] = true
			s.count++
		}
	}

	return s
}

func (b *cutBinding) update(_, child *Partition, prev any) any {
	old := prev.(*CutEdgeSet)
	s := &CutEdgeSet{cut: append([]bool(nil), old.cut...), count: old.count}
	for _, f := range child.flips {
		for _, e := range b.g.Incident(f.Node) {
			if !b.counts(e) {
				continue
			}
			u, v := b.g.Endpoints(e)
			now := child.assignment[u] != child.assignment[v]
			if now != s.cut[e] {
				s.cut[e] = now
				if now {
					s.count++
				} else {
					s.count--
				}
			}
		}
	}

	return s
}

func (b *cutBinding) equal(x, y any) bool {
	a, c := x.(*CutEdgeSet), y.(*CutEdgeSet)
	if a.count != c.count || len(a.cut) != len(c.cut) {
		return false
	}
	for i := range a.cut {
		if a.cut[i] != c.cut[i] {
			return false
		}
	}

	return true
}

// ---------------------------------------------------------------------------
// Election
// ---------------------------------------------------------------------------

// Party describes where an election reads one party's votes from.
//
// With Column empty, every vertex whose Affiliation equals Name casts its
// population for the party. With Column set, every vertex casts the value of
// that numeric attribute.
type Party struct {
	Name   string
	Column string
}

// ByAffiliation returns one affiliation-backed Party per name.
func ByAffiliation(names ...string) []Party {
	out := make([]Party, len(names))
	for i, n := range names {
		out[i] = Party{Name: n}
	}

	return out
}

// ByColumn returns a Party whose votes are the named vertex attribute.
func ByColumn(name, column string) Party { return Party{Name: name, Column: column} }

// Election maintains per-district vote totals for a fixed party list.
type Election struct {
	name    string
	parties []Party
}

// NewElection returns an Election updater. Party names must be distinct.
func NewElection(name string, parties ...Party) *Election {
	return &Election{name: name, parties: append([]Party(nil), parties...)}
}

// Name implements Updater.
func (e *Election) Name() string { return e.name }

// Parties returns the party names in declaration order.
func (e *Election) Parties() []string {
	out := make([]string, len(e.parties))
	for i, p := range e.parties {
		out[i] = p.Name
	}

	return out
}

func (e *Election) bind(g *core.Graph, k int) (binding, error) {
	if len(e.parties) == 0 {
		return nil, fmt.Errorf("election %q has no parties: %w", e.name, ErrInvalidAssignment)
	}
	n := g.VertexCount()
	seen := make(map[string]struct{}, len(e.parties))
	votes := make([][]int64, len(e.parties)) // party → vertex → votes
	for j, p := range e.parties {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("election %q: party %q: %w", e.name, p.Name, ErrDuplicateUpdater)
		}
		seen[p.Name] = struct{}{}
		votes[j] = make([]int64, n)
		found := false
		for v := 0; v < n; v++ {
			if p.Column == "" {
				if g.Affiliation(v) == p.Name {
					votes[j][v] = g.Population(v)
					found = true
				}
				continue
			}
			w, ok := g.Attribute(v, p.Column)
			votes[j][v] = w
			found = found || ok
		}
		if !found && p.Column != "" {
			return nil, fmt.Errorf("election %q: column %q: %w", e.name, p.Column, ErrUnknownAttribute)
		}
	}

	return &electionBinding{parties: e.Parties(), votes: votes, k: k}, nil
}

// ElectionResults is the per-district vote table of one election. Read-only.
type ElectionResults struct {
	parties []string
	votes   [][]int64 // district → party
}

// Parties returns the party names in declaration order.
func (r *ElectionResults) Parties() []string { return r.parties }

// Votes returns the votes party received in district d, or 0 for an unknown party.
func (r *ElectionResults) Votes(d DistrictID, party string) int64 {
	for j, p := range r.parties {
		if p == party {
			return r.votes[d][j]
		}
	}

	return 0
}

// Totals returns party's votes per district.
func (r *ElectionResults) Totals(party string) DistrictTotals {
	out := make(DistrictTotals, len(r.votes))
	for d := range r.votes {
		out[d] = r.Votes(DistrictID(d), party)
	}

	return out
}

// Tally copies the results into a metrics.Tally.
func (r *ElectionResults) Tally() metrics.Tally {
	rows := make([][]int64, len(r.votes))
	for d := range r.votes {
		rows[d] = append([]int64(nil), r.votes[d]...)
	}

	return metrics.Tally{Parties: append([]string(nil), r.parties...), Votes: rows}
}

// Wins returns the number of districts party won outright.
func (r *ElectionResults) Wins(party string) (int, error) {
	return metrics.Wins(r.Tally(), party)
}

// Seats returns party's seat count with tied districts split among leaders.
func (r *ElectionResults) Seats(party string) (float64, error) {
	return metrics.SeatsWithTies(r.Tally(), party)
}

type electionBinding struct {
	parties []string
	votes   [][]int64 // party → vertex
	k       int
}

func (b *electionBinding) compute(p *Partition) any {
	r := &ElectionResults{parties: b.parties, votes: make([][]int64, b.k)}
	for d := range r.votes {
		r.votes[d] = make([]int64, len(b.parties))
	}
	for v, d := range p.assignment {
		for j := range b.parties {
			r.votes[d][j] += b.votes[j][v]
		}
	}

	return r
}

func (b *electionBinding) update(parent, child *Partition, prev any) any {
	old := prev.(*ElectionResults)
	r := &ElectionResults{parties: b.parties, votes: make([][]int64, len(old.votes))}
	for d := range old.votes {
		r.votes[d] = append([]int64(nil), old.votes[d]...)
	}
	for _, f := range child.flips {
		from := parent.assignment[f.Node]
		for j := range b.parties {
			r.votes[from][j] -= b.votes[j][f.Node]
			r.votes[f.To][j] += b.votes[j][f.Node]
		}
	}

	return r
}

func (b *electionBinding) equal(x, y any) bool {
	a, c := x.(*ElectionResults), y.(*ElectionResults)
	if len(a.votes) != len(c.votes) {
		return false
	}
	for d := range a.votes {
		for j := range a.votes[d] {
			if a.votes[d][j] != c.votes[d][j] {
				return false
			}
		}
	}

	return true
}

// ---------------------------------------------------------------------------
// StepIndex
// ---------------------------------------------------------------------------

// StepIndex exposes the partition's step index as an updater value.
type StepIndex struct{}

// NewStepIndex returns the step index updater, named "step_index".
func NewStepIndex() *StepIndex { return &StepIndex{} }

// Name implements Updater.
func (*StepIndex) Name() string { return StepIndexUpdater }

func (*StepIndex) bind(*core.Graph, int) (binding, error) { return stepBinding{}, nil }

type stepBinding struct{}

func (stepBinding) compute(p *Partition) any            { return p.step }
func (stepBinding) update(_, _ *Partition, prev any) any { return prev.(int) + 1 }
func (stepBinding) equal(a, b any) bool                  { return a.(int) == b.(int) }

// DefaultUpdaters returns the population tally, cut edges and step index.
func DefaultUpdaters() []Updater {
	return []Updater{NewPopulationTally(), NewCutEdges(), NewStepIndex()}
}
