// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: Partition construction (New) and derivation (Flip).
// Policy:
//   - A Partition never changes after it is returned; Flip builds a child.
//   - Updater values are computed eagerly, so a child never needs its parent
//     again once Flip returns.

package partition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/recom/core"
)

// schema is the per-chain data shared by every partition derived from one root.
type schema struct {
	graph    *core.Graph
	k        int
	updaters []Updater
	bindings []binding
	index    map[string]int // updater name → position
}

// Partition is one point of a chain's state space: a total assignment of
// graph vertices to k districts plus the cached values of its updaters.
//
// Partitions are immutable and safe for concurrent reads.
type Partition struct {
	schema     *schema
	assignment []DistrictID
	sizes      []int // vertex count per district
	step       int
	parent     int // step index of the parent, -1 for a root
	flips      []Flip
	values     []any
}

// New creates a root partition (step index 0, no parent) of g.
//
// Implementation:
//   - Stage 1: Validate the assignment is total over g and uses exactly the
//     labels 0..k-1 for some k ≥ 1.
//   - Stage 2: Bind every updater to g (duplicate names are rejected).
//   - Stage 3: Compute all updater values from scratch.
//
// Errors:
//   - ErrNilGraph, ErrInvalidAssignment, ErrDuplicateUpdater, ErrUnknownAttribute.
//
// Complexity:
//   - Time O(U·(V+E)) for U updaters, Space O(V + E + U·k).
func New(g *core.Graph, assignment []DistrictID, updaters ...Updater) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if len(assignment) != n {
		return nil, fmt.Errorf("assignment covers %d of %d vertices: %w", len(assignment), n, ErrInvalidAssignment)
	}

	k := 0
	for v, d := range assignment {
		if d < 0 {
			return nil, fmt.Errorf("vertex %s: negative district %d: %w", g.ID(v), d, ErrInvalidAssignment)
		}
		if int(d)+1 > k {
			k = int(d) + 1
		}
	}
	sizes := make([]int, k)
	for _, d := range assignment {
		sizes[d]++
	}
	for d, s := range sizes {
		if s == 0 {
			return nil, fmt.Errorf("district %d has no vertices: %w", d, ErrInvalidAssignment)
		}
	}

	sc := &schema{
		graph: g,
		k:     k,
		index: make(map[string]int, len(updaters)),
	}
	for _, u := range updaters {
		if u == nil {
			continue
		}
		name := u.Name()
		if _, dup := sc.index[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateUpdater)
		}
		b, err := u.bind(g, k)
		if err != nil {
			return nil, fmt.Errorf("updater %q: %w", name, err)
		}
		sc.index[name] = len(sc.updaters)
		sc.updaters = append(sc.updaters, u)
		sc.bindings = append(sc.bindings, b)
	}

	p := &Partition{
		schema:     sc,
		assignment: append([]DistrictID(nil), assignment...),
		sizes:      sizes,
		parent:     -1,
		values:     make([]any, len(sc.bindings)),
	}
	for i, b := range sc.bindings {
		p.values[i] = b.compute(p)
	}

	return p, nil
}

// Flip derives a child partition in which every flip's node moves to its
// target district. Flips whose target equals the current district are
// dropped. The child has step index p.StepIndex()+1 and parent p.StepIndex().
//
// Updater values are updated incrementally from p's values and the flip set.
// The receiver is never mutated.
//
// Errors:
//   - ErrInvalidFlip for an unknown node, an out-of-range district, or a node
//     named twice.
//
// Complexity:
//   - Time O(V + E + |flips|·deg) dominated by copying the assignment and the
//     cut-edge mask.
func (p *Partition) Flip(flips []Flip) (*Partition, error) {
	n, k := len(p.assignment), p.schema.k
	moves := make([]Flip, 0, len(flips))
	for _, f := range flips {
		if f.Node < 0 || f.Node >= n {
			return nil, fmt.Errorf("node %d out of range: %w", f.Node, ErrInvalidFlip)
		}
		if f.To < 0 || int(f.To) >= k {
			return nil, fmt.Errorf("district %d out of range: %w", f.To, ErrInvalidFlip)
		}
		if p.assignment[f.Node] != f.To {
			moves = append(moves, f)
		}
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Node < moves[j].Node })
	for i := 1; i < len(moves); i++ {
		if moves[i].Node == moves[i-1].Node {
			return nil, fmt.Errorf("node %d flipped twice: %w", moves[i].Node, ErrInvalidFlip)
		}
	}

	child := &Partition{
		schema:     p.schema,
		assignment: append([]DistrictID(nil), p.assignment...),
		sizes:      append([]int(nil), p.sizes...),
		step:       p.step + 1,
		parent:     p.step,
		flips:      moves,
		values:     make([]any, len(p.values)),
	}
	for _, f := range moves {
		child.sizes[child.assignment[f.Node]]--
		child.sizes[f.To]++
		child.assignment[f.Node] = f.To
	}
	for i, b := range p.schema.bindings {
		child.values[i] = b.update(p, child, p.values[i])
	}

	return child, nil
}

// Graph returns the underlying graph.
func (p *Partition) Graph() *core.Graph { return p.schema.graph }

// K returns the number of districts.
func (p *Partition) K() int { return p.schema.k }

// StepIndex returns 0 for a root and the parent's step index + 1 otherwise.
func (p *Partition) StepIndex() int { return p.step }

// ParentStep returns the parent's step index, or -1 for a root.
func (p *Partition) ParentStep() int { return p.parent }

// Flips returns the effective flips that produced this partition from its
// parent, sorted by node. The slice is owned by the Partition.
func (p *Partition) Flips() []Flip { return p.flips }

// DistrictOf returns the district of vertex v.
func (p *Partition) DistrictOf(v int) DistrictID { return p.assignment[v] }

// Assignment returns a copy of the vertex → district mapping.
func (p *Partition) Assignment() []DistrictID {
	return append([]DistrictID(nil), p.assignment...)
}

// Size returns the number of vertices in district d.
func (p *Partition) Size(d DistrictID) int { return p.sizes[d] }

// Members returns the ascending vertex indices of district d. Complexity: O(V).
func (p *Partition) Members(d DistrictID) []int {
	out := make([]int, 0, p.sizes[d])
	for v, a := range p.assignment {
		if a == d {
			out = append(out, v)
		}
	}

	return out
}

// Parts returns the members of every district, indexed by DistrictID.
// Complexity: O(V).
func (p *Partition) Parts() [][]int {
	parts := make([][]int, p.schema.k)
	for d := range parts {
		parts[d] = make([]int, 0, p.sizes[d])
	}
	for v, a := range p.assignment {
		parts[a] = append(parts[a], v)
	}

	return parts
}

// Populations returns the population of every district. When a population
// Tally is attached its cached value is copied; otherwise the sums are
// computed from scratch.
func (p *Partition) Populations() []int64 {
	for i, u := range p.schema.updaters {
		if t, ok := u.(*Tally); ok && t.Attribute == core.PopulationAttribute {
			return append([]int64(nil), p.values[i].(DistrictTotals)...)
		}
	}
	g := p.schema.graph
	out := make([]int64, p.schema.k)
	for v, d := range p.assignment {
		out[d] += g.Population(v)
	}

	return out
}

// Updaters returns the attached updater names in registration order.
func (p *Partition) Updaters() []string {
	out := make([]string, len(p.schema.updaters))
	for i, u := range p.schema.updaters {
		out[i] = u.Name()
	}

	return out
}
