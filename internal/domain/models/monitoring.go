package models

import "time"

// Alert severity levels, ordered by urgency.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// Alert types correspond to the monitoring dimension that breached.
type AlertType string

const (
	AlertPerformance AlertType = "PERFORMANCE"
	AlertCompliance  AlertType = "COMPLIANCE"
	AlertFinancial   AlertType = "FINANCIAL"
)

// Anomaly types emitted by the statistical detectors.
type AnomalyType string

const (
	AnomalyVolumeSpike AnomalyType = "VOLUME_SPIKE"
	AnomalyCostOutlier AnomalyType = "COST_ANOMALY"
)

// Alert is a threshold-breach notice attached to a monitoring report.
type Alert struct {
	Type        AlertType     `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Count       int           `json:"count"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Anomaly is a statistical-outlier notice.
type Anomaly struct {
	Type        AnomalyType   `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
	Observed    float64       `json:"observedValue"`
	Expected    float64       `json:"expectedValue"`
}

// TrendSummary describes direction and magnitude of a bucketed series,
// comparing last bucket against first.
type TrendSummary struct {
	Direction     string  `json:"direction"` // "rising", "falling", "flat"
	Change        float64 `json:"change"`
	ChangePercent int     `json:"changePercent"`
}

// TrendSet holds one trend per tracked dimension.
type TrendSet struct {
	Volume      TrendSummary `json:"volume"`
	Performance TrendSummary `json:"performance"`
	Cost        TrendSummary `json:"cost"`
	Quality     TrendSummary `json:"quality"`
}

// CategoryMetrics maps section name to metric name to value, as produced
// by one category aggregator.
type CategoryMetrics map[string]map[string]any

// TimeRangeInfo echoes the resolved monitoring window back to the caller.
type TimeRangeInfo struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Duration string    `json:"duration"`
}

// MonitoringReport is the full per-request monitoring payload.
type MonitoringReport struct {
	Metrics   CategoryMetrics `json:"metrics"`
	Alerts    []Alert         `json:"alerts"`
	Anomalies []Anomaly       `json:"anomalies"`
	Trends    TrendSet        `json:"trends"`
	Timestamp time.Time       `json:"timestamp"`
	TimeRange TimeRangeInfo   `json:"timeRange"`
}
