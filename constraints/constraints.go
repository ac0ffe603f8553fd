// Package constraints decides whether a candidate partition may enter a chain.
//
// A Constraint is a named predicate; a Validator is the logical AND of a list
// of constraints and reports the first one that fails.
package constraints

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/recom/bfs"
	"github.com/katalvlaran/recom/partition"
)

// ErrConstraintFailed is wrapped by Validator.Validate with the name of the
// failing constraint.
var ErrConstraintFailed = errors.New("constraints: constraint failed")

// Constraint is a named predicate over partitions.
type Constraint struct {
	Name  string
	Check func(p *partition.Partition) bool
}

// Contiguous requires every district to induce a connected subgraph.
//
// Complexity: O(k·V + E) per check.
func Contiguous() Constraint {
	return Constraint{
		Name: "contiguous",
		Check: func(p *partition.Partition) bool {
			g := p.Graph()
			for _, members := range p.Parts() {
				if !bfs.Connected(g, members) {
					return false
				}
			}

			return true
		},
	}
}

// IdealPopulation returns the graph population divided by the district count.
func IdealPopulation(p *partition.Partition) float64 {
	return float64(p.Graph().TotalPopulation()) / float64(p.K())
}

// WithinPercentOfIdeal requires every district population to lie in
// [ideal·(1−eps), ideal·(1+eps)]. It panics on a negative eps.
func WithinPercentOfIdeal(eps float64) Constraint {
	if eps < 0 {
		panic(fmt.Sprintf("constraints: WithinPercentOfIdeal(%v): negative tolerance", eps))
	}

	return Constraint{
		Name: fmt.Sprintf("within_%g_of_ideal_population", eps),
		Check: func(p *partition.Partition) bool {
			ideal := IdealPopulation(p)
			lo, hi := ideal*(1-eps), ideal*(1+eps)
			for _, pop := range p.Populations() {
				if f := float64(pop); f < lo || f > hi {
					return false
				}
			}

			return true
		},
	}
}

// DistrictCount requires exactly k non-empty districts.
func DistrictCount(k int) Constraint {
	return Constraint{
		Name: fmt.Sprintf("district_count_%d", k),
		Check: func(p *partition.Partition) bool {
			if p.K() != k {
				return false
			}
			for d := 0; d < k; d++ {
				if p.Size(partition.DistrictID(d)) == 0 {
					return false
				}
			}

			return true
		},
	}
}

// Validator is the logical AND of its constraints, checked in order.
type Validator struct {
	constraints []Constraint
}

// NewValidator returns a Validator over cs. Constraints with a nil Check are skipped.
func NewValidator(cs ...Constraint) *Validator {
	v := &Validator{}
	for _, c := range cs {
		if c.Check != nil {
			v.constraints = append(v.constraints, c)
		}
	}

	return v
}

// Names returns the constraint names in check order.
func (v *Validator) Names() []string {
	out := make([]string, len(v.constraints))
	for i, c := range v.constraints {
		out[i] = c.Name
	}

	return out
}

// Validate returns nil when every constraint holds, otherwise
// ErrConstraintFailed wrapped with the first failing name.
// A nil Validator accepts everything.
func (v *Validator) Validate(p *partition.Partition) error {
	if v == nil {
		return nil
	}
	for _, c := range v.constraints {
		if !c.Check(p) {
			return fmt.Errorf("%s: %w", c.Name, ErrConstraintFailed)
		}
	}

	return nil
}

// Valid reports whether Validate returns nil.
func (v *Validator) Valid(p *partition.Partition) bool { return v.Validate(p) == nil }
