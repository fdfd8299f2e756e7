package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the audit module.
// Transition counters are labelled by operation so a dashboard can show which
// commands callers get wrong most often.
type Metrics struct {
	Transitions         *prometheus.CounterVec
	RejectedTransitions *prometheus.CounterVec
	CompletionScore     prometheus.Histogram
	OverdueMarked       prometheus.Counter
	SweepDuration       prometheus.Histogram
	CommandDuration     *prometheus.HistogramVec
}

// New registers audit metrics with the default registry.
func New() *Metrics {
	return newMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewWith registers audit metrics with reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	return newMetrics(promauto.With(reg))
}

func newMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hsse_audit_commands_total",
			Help: "Total number of audit commands that committed",
		}, []string{"operation"}),
		RejectedTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hsse_audit_commands_rejected_total",
			Help: "Total number of audit commands rejected by the lifecycle rules",
		}, []string{"operation", "code"}),
		CompletionScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hsse_audit_completion_score_percent",
			Help:    "Score percentage of audits at completion",
			Buckets: []float64{40, 50, 60, 70, 80, 90, 100},
		}),
		OverdueMarked: f.NewCounter(prometheus.CounterOpts{
			Name: "hsse_audit_overdue_marked_total",
			Help: "Total number of audits flagged overdue by the sweeper",
		}),
		SweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hsse_audit_overdue_sweep_duration_seconds",
			Help:    "Duration of one overdue sweep",
			Buckets: prometheus.DefBuckets,
		}),
		CommandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hsse_audit_command_duration_seconds",
			Help:    "Duration of audit commands including lock wait and persistence",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementTransition(op string) {
	m.Transitions.WithLabelValues(op).Inc()
}

func (m *Metrics) IncrementRejected(op, code string) {
	m.RejectedTransitions.WithLabelValues(op, code).Inc()
}

func (m *Metrics) ObserveCompletionScore(pct float64) {
	m.CompletionScore.Observe(pct)
}

func (m *Metrics) IncrementOverdueMarked() {
	m.OverdueMarked.Inc()
}

// ObserveSweep records the duration of an overdue sweep started at start.
func (m *Metrics) ObserveSweep(start time.Time) {
	m.SweepDuration.Observe(time.Since(start).Seconds())
}

// ObserveCommand records the duration of op started at start.
func (m *Metrics) ObserveCommand(op string, start time.Time) {
	m.CommandDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
