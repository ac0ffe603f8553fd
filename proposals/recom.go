// SPDX-License-Identifier: MIT
//
// File: recom.go
// Role: Recombination proposal.
// Determinism:
//   - Randomness is drawn in a fixed order: cut edge, tree weights per
//     attempt, then the balanced edge.

package proposals

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/dfs"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/prim_kruskal"
)

// DefaultNodeRepeats is the number of spanning trees ReCom draws before giving up.
const DefaultNodeRepeats = 1

// ReCom is the recombination proposal. Construct it with NewReCom.
type ReCom struct {
	target      float64
	epsilon     float64
	nodeRepeats int
	tree        prim_kruskal.MSTOptions
	cutUpdater  string
}

// ReComOption configures a ReCom.
type ReComOption func(*ReCom)

// WithNodeRepeats sets the number of spanning trees drawn per proposal.
func WithNodeRepeats(n int) ReComOption {
	return func(r *ReCom) { r.nodeRepeats = n }
}

// WithTreeMethod selects prim_kruskal.MethodKruskal (default) or MethodPrim.
func WithTreeMethod(method string) ReComOption {
	return func(r *ReCom) { r.tree.Method = method }
}

// WithCutEdgesUpdater names the CutEdges updater the first draw reads.
// Default: partition.CutEdgesUpdater.
func WithCutEdgesUpdater(name string) ReComOption {
	return func(r *ReCom) { r.cutUpdater = name }
}

// NewReCom returns a ReCom that accepts a split when both halves lie within
// epsilon·target of target.
//
// Errors:
//   - ErrBadOption for target ≤ 0, epsilon outside (0,1), node repeats < 1,
//     or an unknown tree method.
func NewReCom(target, epsilon float64, opts ...ReComOption) (*ReCom, error) {
	r := &ReCom{
		target:      target,
		epsilon:     epsilon,
		nodeRepeats: DefaultNodeRepeats,
		tree:        prim_kruskal.DefaultOptions(),
		cutUpdater:  partition.CutEdgesUpdater,
	}
	for _, opt := range opts {
		opt(r)
	}
	switch {
	case !(target > 0):
		return nil, fmt.Errorf("target %v: %w", target, ErrBadOption)
	case !(epsilon > 0 && epsilon < 1):
		return nil, fmt.Errorf("epsilon %v not in (0,1): %w", epsilon, ErrBadOption)
	case r.nodeRepeats < 1:
		return nil, fmt.Errorf("node repeats %d: %w", r.nodeRepeats, ErrBadOption)
	case r.tree.Method != prim_kruskal.MethodKruskal && r.tree.Method != prim_kruskal.MethodPrim:
		return nil, fmt.Errorf("tree method %q: %w", r.tree.Method, ErrBadOption)
	}

	return r, nil
}

// Name implements Proposal.
func (r *ReCom) Name() string { return "recom" }

// Target returns the ideal district population.
func (r *ReCom) Target() float64 { return r.target }

// Epsilon returns the balance tolerance.
func (r *ReCom) Epsilon() float64 { return r.epsilon }

func (r *ReCom) balanced(pop int64) bool {
	return math.Abs(float64(pop)-r.target) <= r.epsilon*r.target
}

// Propose merges the districts on both sides of a uniformly chosen cut edge
// and redraws them.
//
// Implementation:
//   - Stage 1: Pick a cut edge uniformly (ascending edge order) → districts A, B.
//   - Stage 2: Induce the subgraph on A ∪ B.
//   - Stage 3: Draw a random-weight MST, walk it once in post-order and
//     collect every tree edge whose two sides are both balanced.
//   - Stage 4: Pick one qualifying edge uniformly; the subtree below it
//     becomes A and the rest B. With no qualifying edge, redraw the tree,
//     up to node repeats times.
//
// Errors:
//   - ErrProposalExhausted when there is no cut edge or no tree yields a
//     balanced cut. Outcome.Draws is still filled in.
//   - partition.ErrInvariantViolation when A ∪ B is disconnected.
//
// Complexity:
//   - Time O(R·(n log n)) for R repeats and n = |A ∪ B| on planar inputs.
func (r *ReCom) Propose(p *partition.Partition, rng *rand.Rand) (Outcome, error) {
	cut := cutEdges(p, r.cutUpdater)
	if len(cut) == 0 {
		return Outcome{}, fmt.Errorf("no cut edges: %w", ErrProposalExhausted)
	}
	g := p.Graph()
	u, v := g.Endpoints(cut[rng.Intn(len(cut))])
	a, b := p.DistrictOf(u), p.DistrictOf(v)
	out := Outcome{Districts: [2]partition.DistrictID{a, b}}

	var union []int
	for n := 0; n < g.VertexCount(); n++ {
		if d := p.DistrictOf(n); d == a || d == b {
			union = append(union, n)
		}
	}
	sub := core.Induce(g, union)

	for out.Draws < r.nodeRepeats {
		out.Draws++
		side, ok, err := r.split(sub, rng)
		if err != nil {
			return out, err
		}
		if !ok {
			continue
		}
		flips := make([]partition.Flip, sub.Len())
		for l := range flips {
			to := b
			if side[l] {
				to = a
			}
			flips[l] = partition.Flip{Node: sub.Global(l), To: to}
		}
		child, err := p.Flip(flips)
		if err != nil {
			return out, err
		}
		out.Candidate = child

		return out, nil
	}

	return out, fmt.Errorf("districts %d and %d after %d trees: %w", a, b, out.Draws, ErrProposalExhausted)
}

// split draws one spanning tree of sub and, when a balanced cut exists,
// returns the local membership mask of the side below the chosen tree edge.
func (r *ReCom) split(sub *core.Subgraph, rng *rand.Rand) ([]bool, bool, error) {
	tree, err := prim_kruskal.RandomSpanningTree(sub, rng, r.tree)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		return nil, false, fmt.Errorf("merged districts are disconnected: %w", partition.ErrInvariantViolation)
	}
	if err != nil {
		return nil, false, err
	}

	order, parent, err := dfs.PostOrder(prim_kruskal.Adjacency(sub, tree), 0)
	if err != nil {
		return nil, false, fmt.Errorf("spanning tree: %v: %w", err, partition.ErrInvariantViolation)
	}
	pops := dfs.SubtreeSums(order, parent, sub.Population)
	sizes := dfs.SubtreeSums(order, parent, func(int) int64 { return 1 })
	total := pops[0]

	// Positions in order of subtree roots whose parent edge is a balanced cut.
	var cuts []int
	for pos, l := range order {
		if parent[l] < 0 {
			continue
		}
		if r.balanced(pops[l]) && r.balanced(total-pops[l]) {
			cuts = append(cuts, pos)
		}
	}
	if len(cuts) == 0 {
		return nil, false, nil
	}

	// A post-order lists every subtree as a contiguous block ending at its root.
	pos := cuts[rng.Intn(len(cuts))]
	side := make([]bool, sub.Len())
	for _, l := range order[pos-int(sizes[order[pos]])+1 : pos+1] {
		side[l] = true
	}

	return side, true, nil
}
