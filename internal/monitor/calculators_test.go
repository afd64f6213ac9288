package monitor

import (
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
)

func TestPercentEmptyDenominator(t *testing.T) {
	if got := Percent(5, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Percent(0, -3); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestPercentRounding(t *testing.T) {
	if got := Percent(1, 3); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := Percent(2, 3); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}

func TestOnTimeDeliveryRate(t *testing.T) {
	shipments := []models.ShipmentRecord{
		{Status: models.ShipmentDelivered},
		{Status: models.ShipmentDelivered},
		{Status: models.ShipmentDelivered},
		{Status: models.ShipmentException},
		{Status: models.ShipmentInTransit},
	}
	if got := OnTimeDeliveryRate(shipments); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
	if got := OnTimeDeliveryRate(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
}

func TestThroughputPerHourClamped(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := ThroughputPerHour(10, now, now); got != 0 {
		t.Fatalf("expected 0 for zero elapsed, got %v", got)
	}
	if got := ThroughputPerHour(10, now.Add(time.Hour), now); got != 0 {
		t.Fatalf("expected 0 for negative elapsed, got %v", got)
	}
	if got := ThroughputPerHour(10, now.Add(-2*time.Hour), now); got != 5.0 {
		t.Fatalf("expected 5.0, got %v", got)
	}
}

func TestCustomerSatisfactionIgnoresUnrated(t *testing.T) {
	shipments := []models.ShipmentRecord{
		{Rating: 4},
		{Rating: 5},
		{Rating: 0},
	}
	if got := CustomerSatisfaction(shipments); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
	if got := CustomerSatisfaction(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}

func TestTopCarrierTieBreak(t *testing.T) {
	carriers := []models.CarrierRecord{
		{ID: "c1", Name: "Alpha", Reliability: 90},
		{ID: "c2", Name: "Beta", Reliability: 90},
		{ID: "c3", Name: "Gamma", Reliability: 80},
	}
	top := TopCarrier(carriers)
	if top == nil || top.ID != "c1" {
		t.Fatalf("expected first carrier to win the tie, got %+v", top)
	}
	if TopCarrier(nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestLowMarginShare(t *testing.T) {
	orders := []models.OrderRecord{
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 98},
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 50},
		{Status: models.OrderCancelled, CustomerPrice: 100, FinalPrice: 99},
	}
	if got := LowMarginShare(orders, 0.1); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := LowMarginShare(nil, 0.1); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
}

func TestOrderMarginGuarded(t *testing.T) {
	o := models.OrderRecord{CustomerPrice: 0, FinalPrice: 10}
	if got := o.Margin(); got != 0 {
		t.Fatalf("expected 0 for zero customer price, got %v", got)
	}
}

func TestEstimatorBounds(t *testing.T) {
	est := NewSeededEstimator(42)
	for i := 0; i < 1000; i++ {
		v := est.Between(95, 100)
		if v < 95 || v > 100 {
			t.Fatalf("estimate %v outside [95,100]", v)
		}
	}
}
