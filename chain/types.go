// Package chain drives a Markov chain over partitions: propose, validate,
// accept or repeat, record.
//
// A Chain moves through three states:
//
//	initial ──Next──▶ running ──(total steps produced)──▶ terminated
//
// The first observation is the initial partition itself; exactly TotalSteps
// further observations follow. A step whose proposal was exhausted, whose
// candidate failed validation, or that the acceptance rule declined repeats
// the current partition. Repeats are still observations.
package chain

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/internal/logging"
	"github.com/katalvlaran/recom/internal/telemetry"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/types"
)

// Sentinel errors for chain operations.
var (
	// ErrConfig indicates an unusable chain configuration or initial partition.
	ErrConfig = errors.New("chain: invalid configuration")

	// ErrTerminated is returned by Next after the last observation.
	ErrTerminated = errors.New("chain: terminated")
)

// State is the lifecycle state of a Chain.
type State int

// Chain states.
const (
	StateInitial State = iota
	StateRunning
	StateTerminated
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome classifies one observation.
type Outcome int

// Step outcomes.
const (
	// OutcomeInitial marks the first observation.
	OutcomeInitial Outcome = iota
	// OutcomeAccepted marks a step whose candidate became current.
	OutcomeAccepted
	// OutcomeRejected marks a step whose candidate failed validation or was
	// declined by the acceptance rule.
	OutcomeRejected
	// OutcomeExhausted marks a step whose proposal found no candidate.
	OutcomeExhausted
)

// String returns the lowercase outcome name used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeInitial:
		return "initial"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Repeated reports whether the observation repeats the previous partition.
func (o Outcome) Repeated() bool { return o == OutcomeRejected || o == OutcomeExhausted }

// Step is one observation of the chain.
type Step struct {
	// Index counts observations: 0 for the initial partition, then 1..TotalSteps.
	Index int
	// Partition is the chain's current partition after this step.
	Partition *partition.Partition
	Outcome   Outcome
	// Draws is the number of spanning trees the proposal drew.
	Draws int
}

// Option configures a Chain.
type Option func(*Options)

// Options holds the chain configuration. Build it through New's options.
type Options struct {
	TotalSteps      int
	Rand            *rand.Rand
	Validator       *constraints.Validator
	Accept          accept.Rule
	Retention       int
	CheckInvariants bool
	Label           string
	Logger          types.Logger
	Metrics         types.MetricsCollector
}

// DefaultOptions returns: no steps, no validator, always-accept, default
// retention, invariant checks off, label "0", no-op logging and metrics.
// Rand has no default and must be supplied.
func DefaultOptions() Options {
	return Options{
		Accept:    accept.Always{},
		Retention: partition.DefaultRetention,
		Label:     "0",
		Logger:    logging.NewNop(),
		Metrics:   telemetry.NewNop(),
	}
}

// WithTotalSteps sets the number of observations after the initial one.
func WithTotalSteps(n int) Option { return func(o *Options) { o.TotalSteps = n } }

// WithRand sets the chain's only randomness source.
func WithRand(rng *rand.Rand) Option { return func(o *Options) { o.Rand = rng } }

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithValidator sets the validator candidates and the initial partition must pass.
func WithValidator(v *constraints.Validator) Option { return func(o *Options) { o.Validator = v } }

// WithAcceptance sets the acceptance rule.
func WithAcceptance(r accept.Rule) Option { return func(o *Options) { o.Accept = r } }

// WithRetention sets how many accepted partitions the history keeps;
// non-positive keeps all of them.
func WithRetention(n int) Option { return func(o *Options) { o.Retention = n } }

// WithInvariantChecks recomputes every accepted partition from scratch and
// aborts with partition.ErrInvariantViolation on any mismatch.
func WithInvariantChecks() Option { return func(o *Options) { o.CheckInvariants = true } }

// WithLabel names the chain in logs and metrics.
func WithLabel(label string) Option { return func(o *Options) { o.Label = label } }

// WithLogger sets the logger. Nil keeps the default.
func WithLogger(l types.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics collector. Nil keeps the default.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}
