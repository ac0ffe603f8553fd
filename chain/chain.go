// SPDX-License-Identifier: MIT
//
// File: chain.go
// Role: The step loop.
// Policy:
//   - A chain is single-threaded; Next must not be called concurrently.
//   - Every random draw comes from Options.Rand, in a fixed order per step:
//     proposal, then acceptance rule.

package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/proposals"
)

// Chain is a Markov chain over partitions. Construct it with New.
type Chain struct {
	opts     Options
	proposal proposals.Proposal
	history  *partition.History
	current  *partition.Partition
	state    State
	produced int // observations returned so far
	started  time.Time
}

// New validates the configuration and the initial partition.
//
// Errors (all wrap ErrConfig):
//   - nil initial partition, nil proposal, nil Rand, nil acceptance rule,
//     negative TotalSteps;
//   - an initial partition that breaks its own invariants or fails the validator.
func New(initial *partition.Partition, proposal proposals.Proposal, opts ...Option) (*Chain, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	switch {
	case initial == nil:
		return nil, fmt.Errorf("nil initial partition: %w", ErrConfig)
	case proposal == nil:
		return nil, fmt.Errorf("nil proposal: %w", ErrConfig)
	case o.Rand == nil:
		return nil, fmt.Errorf("no random source: %w", ErrConfig)
	case o.Accept == nil:
		return nil, fmt.Errorf("nil acceptance rule: %w", ErrConfig)
	case o.TotalSteps < 0:
		return nil, fmt.Errorf("total steps %d: %w", o.TotalSteps, ErrConfig)
	}
	if err := initial.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("initial partition: %v: %w", err, ErrConfig)
	}
	if err := o.Validator.Validate(initial); err != nil {
		return nil, fmt.Errorf("initial partition: %v: %w", err, ErrConfig)
	}

	h := partition.NewHistory(o.Retention)
	if err := h.Push(initial); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrConfig)
	}

	return &Chain{
		opts:     o,
		proposal: proposal,
		history:  h,
		current:  initial,
		state:    StateInitial,
	}, nil
}

// State returns the current lifecycle state.
func (c *Chain) State() State { return c.state }

// Current returns the chain's current partition.
func (c *Chain) Current() *partition.Partition { return c.current }

// History returns the arena of accepted partitions.
func (c *Chain) History() *partition.History { return c.history }

// Len returns the total number of observations the chain produces.
func (c *Chain) Len() int { return c.opts.TotalSteps + 1 }

// Next returns the next observation. After the last one the chain is
// terminated and Next returns ErrTerminated.
//
// Errors:
//   - ctx.Err() when ctx is done; the chain can be resumed with a live context.
//   - partition.ErrInvariantViolation (wrapped) on a corrupted candidate; the
//     chain terminates.
//   - any other proposal error; the chain terminates.
func (c *Chain) Next(ctx context.Context) (Step, error) {
	if c.state == StateTerminated {
		return Step{}, ErrTerminated
	}
	if err := ctx.Err(); err != nil {
		return Step{}, err
	}

	if c.state == StateInitial {
		c.state = StateRunning
		c.started = time.Now()
		c.opts.Logger.Info("chain started",
			"chain", c.opts.Label,
			"proposal", c.proposal.Name(),
			"accept", c.opts.Accept.Name(),
			"districts", c.current.K(),
			"total_steps", c.opts.TotalSteps,
		)
		st := Step{Index: 0, Partition: c.current, Outcome: OutcomeInitial}
		c.record(st)

		return st, nil
	}

	st, err := c.advance()
	if err != nil {
		c.state = StateTerminated
		c.opts.Logger.Error("chain aborted", "chain", c.opts.Label, "step", c.produced, "error", err)

		return Step{}, err
	}
	c.record(st)

	return st, nil
}

// advance performs one propose → validate → accept cycle.
func (c *Chain) advance() (Step, error) {
	st := Step{Index: c.produced, Partition: c.current}

	out, err := c.proposal.Propose(c.current, c.opts.Rand)
	st.Draws = out.Draws
	c.opts.Metrics.RecordTreeDraws(c.opts.Label, out.Draws)
	switch {
	case errors.Is(err, proposals.ErrProposalExhausted):
		c.opts.Logger.Debug("proposal exhausted", "chain", c.opts.Label, "step", st.Index, "reason", err)
		st.Outcome = OutcomeExhausted

		return st, nil
	case err != nil:
		return st, fmt.Errorf("step %d: %w", st.Index, err)
	}

	cand := out.Candidate
	if err := c.opts.Validator.Validate(cand); err != nil {
		if !errors.Is(err, constraints.ErrConstraintFailed) {
			return st, fmt.Errorf("step %d: %w", st.Index, err)
		}
		st.Outcome = OutcomeRejected

		return st, nil
	}
	if !c.opts.Accept.Accept(c.current, cand, c.opts.Rand) {
		st.Outcome = OutcomeRejected

		return st, nil
	}
	if c.opts.CheckInvariants {
		if err := cand.CheckInvariants(); err != nil {
			return st, fmt.Errorf("step %d: %w", st.Index, err)
		}
		if cand.K() != c.current.K() {
			return st, fmt.Errorf("step %d: district count %d → %d: %w", st.Index, c.current.K(), cand.K(), partition.ErrInvariantViolation)
		}
	}
	if err := c.history.Push(cand); err != nil {
		return st, fmt.Errorf("step %d: %w", st.Index, err)
	}
	c.current = cand
	st.Partition = cand
	st.Outcome = OutcomeAccepted

	return st, nil
}

func (c *Chain) record(st Step) {
	c.produced++
	c.opts.Metrics.RecordStep(c.opts.Label, st.Outcome.String())
	if set, err := st.Partition.CutEdges(partition.CutEdgesUpdater); err == nil {
		c.opts.Metrics.RecordCutEdges(c.opts.Label, set.Len())
	}
	if c.produced == c.Len() {
		c.state = StateTerminated
		elapsed := time.Since(c.started)
		c.opts.Metrics.RecordChainDuration(c.opts.Label, elapsed.Seconds())
		c.opts.Logger.Info("chain terminated",
			"chain", c.opts.Label,
			"observations", c.produced,
			"step_index", c.current.StepIndex(),
			"elapsed", elapsed,
		)
	}
}

// Run calls fn for every remaining observation until the chain terminates,
// ctx is done, or fn returns an error.
func (c *Chain) Run(ctx context.Context, fn func(Step) error) error {
	for {
		st, err := c.Next(ctx)
		if errors.Is(err, ErrTerminated) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
	}
}
