package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	MonitoringLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "logipulse",
			Subsystem: "monitoring",
			Name:      "latency_seconds",
			Help:      "Latency of monitoring endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	MonitoringErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "logipulse",
			Subsystem: "monitoring",
			Name:      "errors_total",
			Help:      "Errors by monitoring endpoint",
		},
		[]string{"endpoint"},
	)

	ReportCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "logipulse",
			Subsystem: "monitoring",
			Name:      "report_cache_hits_total",
			Help:      "Report cache hits and misses",
		},
		[]string{"outcome"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(MonitoringLatency, MonitoringErrors, ReportCacheHits)
	})
}
