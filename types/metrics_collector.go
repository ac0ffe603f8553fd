package types

// MetricsCollector records operational metrics of running chains.
//
// Implementations must be non-blocking and safe for concurrent use: parallel
// chains in one ensemble share a collector.
type MetricsCollector interface {
	ChainMetrics
	ProposalMetrics
}

// ChainMetrics covers the chain driver's step loop.
type ChainMetrics interface {
	// RecordStep records one produced observation.
	//
	// Parameters:
	//   - chain: Chain label ("0", "1", ... within an ensemble)
	//   - outcome: "initial", "accepted", "rejected" or "exhausted"
	RecordStep(chain, outcome string)

	// RecordCutEdges sets the cut-edge count of the chain's current partition (gauge).
	RecordCutEdges(chain string, count int)

	// RecordChainDuration records a finished chain's wall time in seconds.
	RecordChainDuration(chain string, seconds float64)
}

// ProposalMetrics covers the proposal engine.
type ProposalMetrics interface {
	// RecordTreeDraws records how many spanning trees one proposal drew.
	RecordTreeDraws(chain string, draws int)
}
