package monitor

import (
	"fmt"
	"sort"
	"time"

	"LogiPulse/internal/domain/models"
)

const (
	volumeSpikeFactor = 2.0
	costOutlierFactor = 1.5
)

// AnomalyEngine flags statistical outliers in a window snapshot. Both
// detectors special-case empty inputs, so the mean is never taken over an
// empty set.
type AnomalyEngine struct {
	now func() time.Time
}

// NewAnomalyEngine returns an engine stamping anomalies from the system clock.
func NewAnomalyEngine() *AnomalyEngine {
	return &AnomalyEngine{now: time.Now}
}

// NewAnomalyEngineAt returns an engine with a fixed clock for tests.
func NewAnomalyEngineAt(now func() time.Time) *AnomalyEngine {
	return &AnomalyEngine{now: now}
}

// Detect runs the volume-spike and cost-outlier detectors.
func (e *AnomalyEngine) Detect(snap *models.WindowSnapshot) []models.Anomaly {
	ts := e.now()
	anomalies := []models.Anomaly{}
	anomalies = append(anomalies, e.volumeSpikes(snap.Requests, ts)...)
	anomalies = append(anomalies, e.costOutliers(snap.Orders, ts)...)
	return anomalies
}

// volumeSpikes buckets transport requests by hour of day and flags every
// bucket whose volume exceeds twice the mean over the present buckets.
func (e *AnomalyEngine) volumeSpikes(requests []models.RequestRecord, ts time.Time) []models.Anomaly {
	if len(requests) == 0 {
		return nil
	}
	byHour := make(map[int]int)
	for _, r := range requests {
		byHour[r.CreatedAt.Hour()]++
	}
	total := 0
	for _, n := range byHour {
		total += n
	}
	mean := float64(total) / float64(len(byHour))
	threshold := volumeSpikeFactor * mean

	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	var out []models.Anomaly
	for _, h := range hours {
		n := byHour[h]
		if float64(n) <= threshold {
			continue
		}
		out = append(out, models.Anomaly{
			Type:        models.AnomalyVolumeSpike,
			Severity:    models.SeverityHigh,
			Description: fmt.Sprintf("Ungewöhnlich hohes Auftragsvolumen um %02d:00 Uhr", h),
			Timestamp:   ts,
			Observed:    float64(n),
			Expected:    mean,
		})
	}
	return out
}

// costOutliers emits a single summary anomaly for the set of orders whose
// carrier cost exceeds 1.5 times the mean.
func (e *AnomalyEngine) costOutliers(orders []models.OrderRecord, ts time.Time) []models.Anomaly {
	if len(orders) == 0 {
		return nil
	}
	sum := 0.0
	for _, o := range orders {
		sum += o.FinalPrice
	}
	mean := sum / float64(len(orders))
	threshold := costOutlierFactor * mean

	count := 0
	maxCost := 0.0
	for _, o := range orders {
		if o.FinalPrice > threshold {
			count++
			if o.FinalPrice > maxCost {
				maxCost = o.FinalPrice
			}
		}
	}
	if count == 0 {
		return nil
	}
	return []models.Anomaly{{
		Type:        models.AnomalyCostOutlier,
		Severity:    models.SeverityMedium,
		Description: fmt.Sprintf("%d Aufträge mit ungewöhnlich hohen Frachtkosten", count),
		Timestamp:   ts,
		Observed:    maxCost,
		Expected:    mean,
	}}
}
