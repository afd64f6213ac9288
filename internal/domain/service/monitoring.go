package service

import "LogiPulse/internal/domain/models"

// AlertDetector scans a window snapshot for threshold breaches.
type AlertDetector interface {
	Detect(snap *models.WindowSnapshot) []models.Alert
}

// AnomalyDetector flags statistical outliers in a window snapshot.
type AnomalyDetector interface {
	Detect(snap *models.WindowSnapshot) []models.Anomaly
}

// TrendSynthesizer derives per-dimension trends from a window snapshot
// using the given equal-width bucket count.
type TrendSynthesizer interface {
	Synthesize(snap *models.WindowSnapshot, buckets int) models.TrendSet
}

// CategoryAggregator builds the nested KPI object of one monitoring
// category. Aggregators never fail on empty collections; every calculator
// they call guarantees safe defaults.
type CategoryAggregator interface {
	Aggregate(snap *models.WindowSnapshot) models.CategoryMetrics
}
