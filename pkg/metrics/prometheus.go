package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	eventsStored  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastEventTime *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		eventsStored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logipulse_events_stored_total",
				Help: "Total number of tracking events stored per backend",
			},
			[]string{"backend", "tenant"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logipulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastEventTime: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "logipulse_last_event_timestamp_seconds",
				Help: "Unix timestamp of the last tracking event per tenant",
			},
			[]string{"tenant"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logipulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordEventStored records a tracking event stored to a backend.
func (r *Recorder) RecordEventStored(backend, tenantID string) {
	r.eventsStored.WithLabelValues(backend, tenantID).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastEventTime records the timestamp of a tenant's latest event.
func (r *Recorder) RecordLastEventTime(tenantID string, ts int64) {
	r.lastEventTime.WithLabelValues(tenantID).Set(float64(ts))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
