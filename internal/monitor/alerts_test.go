package monitor

import (
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
)

func fixedClock() func() time.Time {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestDetectNoAlertsOnHealthyWindow(t *testing.T) {
	snap := emptySnapshot()
	snap.Shipments = []models.ShipmentRecord{{Status: models.ShipmentDelivered}}
	snap.Documents = []models.ComplianceDocument{{Status: models.DocumentApproved}}
	snap.Orders = []models.OrderRecord{{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 80}}

	alerts := NewAlertEngineAt(fixedClock()).Detect(snap)
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %d", len(alerts))
	}
}

func TestDetectDelayedShipments(t *testing.T) {
	snap := emptySnapshot()
	snap.Shipments = []models.ShipmentRecord{
		{Status: models.ShipmentException},
		{Status: models.ShipmentDelivered},
	}
	alerts := NewAlertEngineAt(fixedClock()).Detect(snap)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Type != models.AlertPerformance || a.Severity != models.SeverityHigh || a.Count != 1 {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestDetectExpiredDocuments(t *testing.T) {
	snap := emptySnapshot()
	snap.Documents = []models.ComplianceDocument{
		{Status: models.DocumentExpired},
		{Status: models.DocumentExpired},
		{Status: models.DocumentApproved},
	}
	alerts := NewAlertEngineAt(fixedClock()).Detect(snap)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Type != models.AlertCompliance || a.Severity != models.SeverityCritical || a.Count != 2 {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestDetectLowMarginOrders(t *testing.T) {
	snap := emptySnapshot()
	// 2 of 4 orders below the 0.1 margin floor, 50% > 30%.
	snap.Orders = []models.OrderRecord{
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 99},
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 95},
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 50},
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 60},
	}
	alerts := NewAlertEngineAt(fixedClock()).Detect(snap)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Type != models.AlertFinancial || a.Severity != models.SeverityMedium || a.Count != 2 {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestDetectRuleOrder(t *testing.T) {
	snap := emptySnapshot()
	snap.Shipments = []models.ShipmentRecord{{Status: models.ShipmentException}}
	snap.Documents = []models.ComplianceDocument{{Status: models.DocumentExpired}}
	snap.Orders = []models.OrderRecord{
		{Status: models.OrderCompleted, CustomerPrice: 100, FinalPrice: 99},
	}
	alerts := NewAlertEngineAt(fixedClock()).Detect(snap)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	if alerts[0].Type != models.AlertPerformance || alerts[1].Type != models.AlertCompliance || alerts[2].Type != models.AlertFinancial {
		t.Fatalf("unexpected rule order: %v %v %v", alerts[0].Type, alerts[1].Type, alerts[2].Type)
	}
}
