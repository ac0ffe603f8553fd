package partition

import (
	"fmt"
)

// Value returns the cached value of the named updater.
func (p *Partition) Value(name string) (any, error) {
	i, ok := p.schema.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownUpdater)
	}

	return p.values[i], nil
}

// Tally returns the per-district totals of the named Tally updater.
func (p *Partition) Tally(name string) (DistrictTotals, error) {
	return valueAs[DistrictTotals](p, name)
}

// CutEdges returns the cut-edge set of the named CutEdges updater.
func (p *Partition) CutEdges(name string) (*CutEdgeSet, error) {
	return valueAs[*CutEdgeSet](p, name)
}

// Election returns the results of the named Election updater.
func (p *Partition) Election(name string) (*ElectionResults, error) {
	return valueAs[*ElectionResults](p, name)
}

func valueAs[T any](p *Partition, name string) (T, error) {
	var zero T
	v, err := p.Value(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%q: %w", name, ErrUpdaterKind)
	}

	return t, nil
}

// CheckInvariants verifies the assignment is total and surjective onto
// 0..K()-1, that district populations sum to the graph total, and that every
// cached updater value equals its from-scratch recomputation.
//
// Complexity: O(U·(V+E)). Intended for debug runs and tests.
func (p *Partition) CheckInvariants() error {
	g := p.schema.graph
	if len(p.assignment) != g.VertexCount() {
		return fmt.Errorf("assignment covers %d of %d vertices: %w", len(p.assignment), g.VertexCount(), ErrInvariantViolation)
	}
	sizes := make([]int, p.schema.k)
	for v, d := range p.assignment {
		if d < 0 || int(d) >= p.schema.k {
			return fmt.Errorf("vertex %d has district %d: %w", v, d, ErrInvariantViolation)
		}
		sizes[d]++
	}
	for d, s := range sizes {
		if s == 0 {
			return fmt.Errorf("district %d is empty: %w", d, ErrInvariantViolation)
		}
		if s != p.sizes[d] {
			return fmt.Errorf("district %d size %d, cached %d: %w", d, s, p.sizes[d], ErrInvariantViolation)
		}
	}
	var total int64
	for _, pop := range p.Populations() {
		total += pop
	}
	if total != g.TotalPopulation() {
		return fmt.Errorf("district populations sum to %d, graph total %d: %w", total, g.TotalPopulation(), ErrInvariantViolation)
	}
	for i, b := range p.schema.bindings {
		if !b.equal(p.values[i], b.compute(p)) {
			return fmt.Errorf("updater %q drifted from recomputation: %w", p.schema.updaters[i].Name(), ErrInvariantViolation)
		}
	}

	return nil
}
