// SPDX-License-Identifier: MIT
//
// File: history.go
// Role: Step-indexed arena of accepted partitions.
// Policy:
//   - Slots are keyed by step index; parent links are step indices, never pointers.
//   - Pushes must form a single line: each new partition's parent is the latest entry.
//   - With a positive retention only the newest entries are kept; older slots are reused.

package partition

import (
	"fmt"
)

// DefaultRetention is the number of partitions a History keeps by default.
const DefaultRetention = 64

// History records the accepted partitions of one chain.
//
// A History is not safe for concurrent mutation; chains own theirs.
type History struct {
	retention int          // ≤ 0 keeps everything
	slots     []*Partition // ring when retention > 0
	base      int          // step index of the first pushed partition
	latest    int          // step index of the newest partition
	size      int
}

// NewHistory returns an empty History. A non-positive retention keeps every
// partition.
func NewHistory(retention int) *History {
	h := &History{retention: retention}
	if retention > 0 {
		h.slots = make([]*Partition, retention)
	}

	return h
}

// Push appends p. The first push accepts any partition; later pushes require
// p.ParentStep() to equal the latest step index.
func (h *History) Push(p *Partition) error {
	if h.size > 0 && p.parent != h.latest {
		return fmt.Errorf("push step %d with parent %d onto latest %d: %w", p.step, p.parent, h.latest, ErrInvariantViolation)
	}
	if h.size == 0 {
		h.base = p.step
	}
	h.latest = p.step
	if h.retention <= 0 {
		h.slots = append(h.slots, p)
		h.size++

		return nil
	}
	h.slots[p.step%h.retention] = p
	if h.size < h.retention {
		h.size++
	}

	return nil
}

// Len returns the number of retained partitions.
func (h *History) Len() int { return h.size }

// Latest returns the newest partition, or nil when empty.
func (h *History) Latest() *Partition {
	p, _ := h.At(h.latest)

	return p
}

// Oldest returns the step index of the oldest retained partition.
func (h *History) Oldest() int { return h.latest - h.size + 1 }

// At returns the partition recorded at step, if it is still retained.
func (h *History) At(step int) (*Partition, bool) {
	if h.size == 0 || step > h.latest || step < h.Oldest() {
		return nil, false
	}
	if h.retention <= 0 {
		return h.slots[step-h.base], true
	}

	return h.slots[step%h.retention], true
}

// Parent returns p's parent when it is still retained.
func (h *History) Parent(p *Partition) (*Partition, bool) {
	if p.parent < 0 {
		return nil, false
	}

	return h.At(p.parent)
}
