package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the relay.
type Metrics struct {
	Published      prometheus.Counter
	PublishFailure prometheus.Counter
	BatchDuration  prometheus.Histogram
	BreakerState   prometheus.Gauge
}

// NewMetrics registers relay metrics with the default registry.
func NewMetrics() *Metrics {
	return newMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewMetricsWith registers relay metrics with reg. Tests pass a fresh registry.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return newMetrics(promauto.With(reg))
}

func newMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		Published: f.NewCounter(prometheus.CounterOpts{
			Name: "hsse_outbox_published_total",
			Help: "Total number of outbox records delivered to the publisher",
		}),
		PublishFailure: f.NewCounter(prometheus.CounterOpts{
			Name: "hsse_outbox_publish_failures_total",
			Help: "Total number of outbox batches that failed to publish",
		}),
		BatchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hsse_outbox_batch_duration_seconds",
			Help:    "Time spent relaying one outbox batch",
			Buckets: prometheus.DefBuckets,
		}),
		BreakerState: f.NewGauge(prometheus.GaugeOpts{
			Name: "hsse_outbox_breaker_state",
			Help: "Relay circuit breaker state (0=closed, 1=open)",
		}),
	}
}

func (m *Metrics) IncPublished(n int) {
	m.Published.Add(float64(n))
}

func (m *Metrics) IncPublishFailure() {
	m.PublishFailure.Inc()
}

func (m *Metrics) ObserveBatchDuration(seconds float64) {
	m.BatchDuration.Observe(seconds)
}

func (m *Metrics) SetBreakerState(open bool) {
	if open {
		m.BreakerState.Set(1)
	} else {
		m.BreakerState.Set(0)
	}
}
