// Package partition: model overview.
//
// A Partition assigns every vertex of a core.Graph to one of k districts
// labelled 0..k-1. Partitions are immutable; Flip derives a child and
// maintains the attached updaters incrementally:
//
//	Tally       per-district sum of a vertex attribute ("population" by default)
//	CutEdges    edges whose endpoints disagree (rook-only variant available)
//	Election    per-district party votes, from affiliations or numeric columns
//	StepIndex   0 for the root, parent + 1 afterwards
//
// Updaters are descriptions; New binds them to the graph once and every
// descendant shares that binding, so the same updater list may be handed to
// many independent chains.
//
// History keeps accepted partitions keyed by step index. Parent links are
// step indices into it, which keeps long chains from pinning every ancestor.
package partition
