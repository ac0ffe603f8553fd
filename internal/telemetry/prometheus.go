package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/recom/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	steps         *prometheus.CounterVec
	cutEdges      *prometheus.GaugeVec
	treeDraws     *prometheus.HistogramVec
	chainDuration *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace ("recom" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "recom"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.steps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "chain",
			Name:      "steps_total",
			Help:      "Observations produced, by chain and outcome.",
		}, []string{"chain", "outcome"})

		p.cutEdges = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "chain",
			Name:      "cut_edges",
			Help:      "Cut-edge count of the current partition.",
		}, []string{"chain"})

		p.treeDraws = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "proposal",
			Name:      "tree_draws",
			Help:      "Spanning trees drawn per proposal.",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
		}, []string{"chain"})

		p.chainDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "chain",
			Name:      "duration_seconds",
			Help:      "Wall time of finished chains.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"chain"})

		p.reg.MustRegister(p.steps)
		p.reg.MustRegister(p.cutEdges)
		p.reg.MustRegister(p.treeDraws)
		p.reg.MustRegister(p.chainDuration)
	})
}

// RecordStep increments the step counter for outcome.
func (p *PrometheusCollector) RecordStep(chain, outcome string) {
	p.ensureRegistered()
	p.steps.WithLabelValues(chain, outcome).Inc()
}

// RecordCutEdges sets the cut-edge gauge.
func (p *PrometheusCollector) RecordCutEdges(chain string, count int) {
	p.ensureRegistered()
	p.cutEdges.WithLabelValues(chain).Set(float64(count))
}

// RecordChainDuration observes a finished chain's wall time.
func (p *PrometheusCollector) RecordChainDuration(chain string, seconds float64) {
	p.ensureRegistered()
	p.chainDuration.WithLabelValues(chain).Observe(seconds)
}

// RecordTreeDraws observes the number of trees one proposal drew.
func (p *PrometheusCollector) RecordTreeDraws(chain string, draws int) {
	p.ensureRegistered()
	p.treeDraws.WithLabelValues(chain).Observe(float64(draws))
}
