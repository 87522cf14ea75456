package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reconcile outcomes.
const (
	OutcomeWritten  = "written"
	OutcomeReset    = "reset"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	ReconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowsync_reconcile_total",
			Help: "Total number of reconcile calls by pipeline and outcome",
		},
		[]string{"pipeline", "outcome"},
	)

	FieldsUnchangedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowsync_fields_unchanged_total",
			Help: "Total number of desired fields omitted from a patch because they did not change",
		},
		[]string{"field"},
	)

	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shadowsync_store_duration_seconds",
			Help:    "Shadow store call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "op"},
	)
)

func init() {
	prometheus.MustRegister(ReconcileTotal)
	prometheus.MustRegister(FieldsUnchangedTotal)
	prometheus.MustRegister(StoreDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer measures the duration of a single operation.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the time elapsed since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveStore records the elapsed time against StoreDuration.
func (t *Timer) ObserveStore(backend, op string) {
	StoreDuration.WithLabelValues(backend, op).Observe(t.Duration().Seconds())
}

// RecordReconcile counts one reconcile call.
func RecordReconcile(pipeline, outcome string) {
	ReconcileTotal.WithLabelValues(pipeline, outcome).Inc()
}

// RecordUnchanged counts a desired field dropped as unchanged.
func RecordUnchanged(field string) {
	FieldsUnchangedTotal.WithLabelValues(field).Inc()
}
