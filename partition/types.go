// File: types.go
// Role: District labels, flips and partition sentinels.

package partition

import (
	"errors"
)

// Sentinel errors for partition operations.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("partition: graph is nil")

	// ErrInvalidAssignment indicates an assignment that is not total over the
	// graph or not surjective onto 0..k-1.
	ErrInvalidAssignment = errors.New("partition: invalid assignment")

	// ErrInvalidFlip indicates a flip naming an unknown node or district, or
	// naming the same node twice.
	ErrInvalidFlip = errors.New("partition: invalid flip")

	// ErrUnknownUpdater indicates a lookup of an updater name not attached to the partition.
	ErrUnknownUpdater = errors.New("partition: unknown updater")

	// ErrDuplicateUpdater indicates two updaters registered under one name.
	ErrDuplicateUpdater = errors.New("partition: duplicate updater name")

	// ErrUpdaterKind indicates a typed lookup against an updater of another kind.
	ErrUpdaterKind = errors.New("partition: updater has a different kind")

	// ErrUnknownAttribute indicates a tally or election column no vertex carries.
	ErrUnknownAttribute = errors.New("partition: attribute not found on any vertex")

	// ErrInvariantViolation signals a broken partition invariant: an assignment
	// that stopped being total, a district that vanished, a population that no
	// longer sums to the graph total, a cached value that disagrees with its
	// from-scratch recomputation, or a history that stopped being linear.
	// It indicates a bug, never a recoverable runtime condition.
	ErrInvariantViolation = errors.New("partition: invariant violation")
)

// DistrictID labels a district. Labels are dense: a partition with k
// districts uses exactly 0..k-1.
type DistrictID int

// Flip moves Node (dense vertex index) into district To.
type Flip struct {
	Node int
	To   DistrictID
}

// Assignment converts plain integer labels to DistrictIDs.
func Assignment(labels []int) []DistrictID {
	out := make([]DistrictID, len(labels))
	for i, l := range labels {
		out[i] = DistrictID(l)
	}

	return out
}

// Default updater names.
const (
	PopulationUpdater   = "population"
	CutEdgesUpdater     = "cut_edges"
	RookCutEdgesUpdater = "rook_cut_edges"
	StepIndexUpdater    = "step_index"
)
