package monitor

import (
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
)

func requestsAtHour(hour, count int) []models.RequestRecord {
	out := make([]models.RequestRecord, count)
	for i := range out {
		out[i] = models.RequestRecord{
			Status:    models.RequestCompleted,
			CreatedAt: time.Date(2025, 6, 1, hour, 15, 0, 0, time.UTC),
		}
	}
	return out
}

func TestVolumeSpikeDetection(t *testing.T) {
	snap := emptySnapshot()
	// Hourly volumes 10,10,10,10,50: mean 18, threshold 36, only the 50
	// bucket breaches.
	for h := 0; h < 4; h++ {
		snap.Requests = append(snap.Requests, requestsAtHour(h, 10)...)
	}
	snap.Requests = append(snap.Requests, requestsAtHour(4, 50)...)

	anomalies := NewAnomalyEngineAt(fixedClock()).Detect(snap)
	if len(anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(anomalies))
	}
	a := anomalies[0]
	if a.Type != models.AnomalyVolumeSpike || a.Severity != models.SeverityHigh {
		t.Fatalf("unexpected anomaly %+v", a)
	}
	if a.Observed != 50 || a.Expected != 18 {
		t.Fatalf("expected observed 50 / expected 18, got %v / %v", a.Observed, a.Expected)
	}
}

func TestVolumeSpikeEmptyInput(t *testing.T) {
	anomalies := NewAnomalyEngineAt(fixedClock()).Detect(emptySnapshot())
	if len(anomalies) != 0 {
		t.Fatalf("expected no anomalies for empty window, got %d", len(anomalies))
	}
}

func TestCostOutlierSummary(t *testing.T) {
	snap := emptySnapshot()
	// Mean cost 200, threshold 300, two orders above it.
	snap.Orders = []models.OrderRecord{
		{Status: models.OrderCompleted, FinalPrice: 100},
		{Status: models.OrderCompleted, FinalPrice: 100},
		{Status: models.OrderCompleted, FinalPrice: 100},
		{Status: models.OrderCompleted, FinalPrice: 100},
		{Status: models.OrderCompleted, FinalPrice: 400},
		{Status: models.OrderCompleted, FinalPrice: 400},
	}
	anomalies := NewAnomalyEngineAt(fixedClock()).Detect(snap)
	if len(anomalies) != 1 {
		t.Fatalf("expected a single summary anomaly, got %d", len(anomalies))
	}
	a := anomalies[0]
	if a.Type != models.AnomalyCostOutlier || a.Severity != models.SeverityMedium {
		t.Fatalf("unexpected anomaly %+v", a)
	}
	if a.Observed != 400 {
		t.Fatalf("expected observed 400, got %v", a.Observed)
	}
}

func TestCostOutlierNoneWhenUniform(t *testing.T) {
	snap := emptySnapshot()
	snap.Orders = []models.OrderRecord{
		{Status: models.OrderCompleted, FinalPrice: 100},
		{Status: models.OrderCompleted, FinalPrice: 110},
		{Status: models.OrderCompleted, FinalPrice: 90},
	}
	anomalies := NewAnomalyEngineAt(fixedClock()).Detect(snap)
	if len(anomalies) != 0 {
		t.Fatalf("expected no anomalies, got %d", len(anomalies))
	}
}
