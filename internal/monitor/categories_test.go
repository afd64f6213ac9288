package monitor

import (
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
)

func emptySnapshot() *models.WindowSnapshot {
	to := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.WindowSnapshot{
		TenantID: "t1",
		From:     to.Add(-24 * time.Hour),
		To:       to,
	}
}

func TestCategoryNames(t *testing.T) {
	want := []string{"overview", "carriers", "routes", "operations", "financial", "compliance", "sustainability"}
	got := CategoryNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("expected category %q at %d, got %q", name, i, got[i])
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("bogus"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestOverviewSections(t *testing.T) {
	spec, ok := Lookup("overview")
	if !ok {
		t.Fatalf("expected overview category")
	}
	out := spec.Aggregate(emptySnapshot(), NewSeededEstimator(1))
	for _, sec := range []string{"operational", "performance", "quality", "efficiency"} {
		if _, ok := out[sec]; !ok {
			t.Fatalf("missing section %q", sec)
		}
	}
}

// Aggregating an empty snapshot must produce every declared metric with a
// safe value for every category.
func TestAggregateEmptySnapshotAllCategories(t *testing.T) {
	est := NewSeededEstimator(7)
	snap := emptySnapshot()
	for _, name := range CategoryNames() {
		spec, ok := Lookup(name)
		if !ok {
			t.Fatalf("category %q vanished", name)
		}
		out := spec.Aggregate(snap, est)
		if len(out) != len(spec.Sections) {
			t.Fatalf("category %q: expected %d sections, got %d", name, len(spec.Sections), len(out))
		}
		for _, sec := range spec.Sections {
			vals, ok := out[sec.Name]
			if !ok {
				t.Fatalf("category %q missing section %q", name, sec.Name)
			}
			for _, m := range sec.Metrics {
				if _, ok := vals[m.Name]; !ok {
					t.Fatalf("category %q section %q missing metric %q", name, sec.Name, m.Name)
				}
			}
		}
	}
}

func TestSystemUptimeBounded(t *testing.T) {
	spec, _ := Lookup("overview")
	est := NewSeededEstimator(3)
	for i := 0; i < 200; i++ {
		out := spec.Aggregate(emptySnapshot(), est)
		v, ok := out["performance"]["systemUptime"].(float64)
		if !ok {
			t.Fatalf("systemUptime missing or wrong type: %v", out["performance"]["systemUptime"])
		}
		if v < 95 || v > 100 {
			t.Fatalf("systemUptime %v outside [95,100]", v)
		}
	}
}

func TestAutomationRateWholePercent(t *testing.T) {
	spec, _ := Lookup("overview")
	est := NewSeededEstimator(5)
	for i := 0; i < 200; i++ {
		out := spec.Aggregate(emptySnapshot(), est)
		v, ok := out["efficiency"]["automationRate"].(int)
		if !ok {
			t.Fatalf("automationRate missing or wrong type: %v", out["efficiency"]["automationRate"])
		}
		if v < 40 || v > 80 {
			t.Fatalf("automationRate %d outside [40,80]", v)
		}
	}
}

func TestCarrierCategoryTopPerformer(t *testing.T) {
	snap := emptySnapshot()
	snap.Carriers = []models.CarrierRecord{
		{ID: "c1", Name: "Alpha", Active: true, Reliability: 82},
		{ID: "c2", Name: "Beta", Active: true, Reliability: 96},
	}
	spec, _ := Lookup("carriers")
	out := spec.Aggregate(snap, NewSeededEstimator(1))

	top, ok := out["performance"]["topPerformer"].(*CarrierHighlight)
	if !ok || top == nil {
		t.Fatalf("expected top performer, got %v", out["performance"]["topPerformer"])
	}
	if top.ID != "c2" {
		t.Fatalf("expected c2 as top performer, got %q", top.ID)
	}
	if avg := out["performance"]["avgReliability"]; avg != 89.0 {
		t.Fatalf("expected avg reliability 89.0, got %v", avg)
	}
}
