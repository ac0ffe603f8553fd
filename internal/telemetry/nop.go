package telemetry

import "github.com/katalvlaran/recom/types"

// NopMetrics discards every measurement.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop returns a collector that records nothing.
func NewNop() *NopMetrics { return &NopMetrics{} }

// RecordStep is a no-op.
func (*NopMetrics) RecordStep(_, _ string) {}

// RecordCutEdges is a no-op.
func (*NopMetrics) RecordCutEdges(_ string, _ int) {}

// RecordChainDuration is a no-op.
func (*NopMetrics) RecordChainDuration(_ string, _ float64) {}

// RecordTreeDraws is a no-op.
func (*NopMetrics) RecordTreeDraws(_ string, _ int) {}
