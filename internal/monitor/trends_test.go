package monitor

import (
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
)

func TestSynthesizeSeriesFlat(t *testing.T) {
	got := SynthesizeSeries([]float64{10, 10, 10})
	if got.Direction != "flat" || got.Change != 0 || got.ChangePercent != 0 {
		t.Fatalf("unexpected trend %+v", got)
	}
}

func TestSynthesizeSeriesRising(t *testing.T) {
	got := SynthesizeSeries([]float64{10, 15})
	if got.Direction != "rising" || got.Change != 5 || got.ChangePercent != 50 {
		t.Fatalf("unexpected trend %+v", got)
	}
}

func TestSynthesizeSeriesFalling(t *testing.T) {
	got := SynthesizeSeries([]float64{20, 25, 10})
	if got.Direction != "falling" || got.Change != 10 || got.ChangePercent != -50 {
		t.Fatalf("unexpected trend %+v", got)
	}
}

func TestSynthesizeSeriesZeroFirstBucket(t *testing.T) {
	got := SynthesizeSeries([]float64{0, 5})
	if got.Direction != "rising" || got.Change != 5 {
		t.Fatalf("unexpected trend %+v", got)
	}
	if got.ChangePercent != 0 {
		t.Fatalf("expected guarded changePercent 0, got %d", got.ChangePercent)
	}
}

func TestSynthesizeSeriesTooShort(t *testing.T) {
	got := SynthesizeSeries([]float64{42})
	if got.Direction != "flat" || got.Change != 0 || got.ChangePercent != 0 {
		t.Fatalf("unexpected trend %+v", got)
	}
}

func TestTrendEngineVolume(t *testing.T) {
	snap := emptySnapshot()
	// One request in the first bucket, three in the last.
	snap.Requests = []models.RequestRecord{
		{CreatedAt: snap.From.Add(10 * time.Minute)},
		{CreatedAt: snap.To.Add(-10 * time.Minute)},
		{CreatedAt: snap.To.Add(-20 * time.Minute)},
		{CreatedAt: snap.To.Add(-30 * time.Minute)},
	}
	trends := NewTrendEngine().Synthesize(snap, 24)
	if trends.Volume.Direction != "rising" {
		t.Fatalf("expected rising volume, got %+v", trends.Volume)
	}
	if trends.Volume.Change != 2 {
		t.Fatalf("expected change 2, got %v", trends.Volume.Change)
	}
	if trends.Volume.ChangePercent != 200 {
		t.Fatalf("expected changePercent 200, got %d", trends.Volume.ChangePercent)
	}
}

func TestTrendEngineDropsOutOfWindow(t *testing.T) {
	snap := emptySnapshot()
	snap.Requests = []models.RequestRecord{
		{CreatedAt: snap.From.Add(-time.Hour)},
		{CreatedAt: snap.To.Add(time.Hour)},
	}
	trends := NewTrendEngine().Synthesize(snap, 24)
	if trends.Volume.Direction != "flat" || trends.Volume.Change != 0 {
		t.Fatalf("expected flat volume, got %+v", trends.Volume)
	}
}
