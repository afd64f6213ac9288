package monitor

import (
	"fmt"
	"time"

	"LogiPulse/internal/domain/models"
)

// Share of low-margin orders above which the financial alert fires.
const lowMarginAlertShare = 30

// AlertEngine evaluates the fixed alert rules over a window snapshot.
// Rules are independent; the output order matches the evaluation order.
type AlertEngine struct {
	now func() time.Time
}

// NewAlertEngine returns an engine stamping alerts from the system clock.
func NewAlertEngine() *AlertEngine {
	return &AlertEngine{now: time.Now}
}

// NewAlertEngineAt returns an engine with a fixed clock for tests.
func NewAlertEngineAt(now func() time.Time) *AlertEngine {
	return &AlertEngine{now: now}
}

// Detect runs all rules and returns the triggered alerts, possibly none.
func (e *AlertEngine) Detect(snap *models.WindowSnapshot) []models.Alert {
	ts := e.now()
	alerts := []models.Alert{}

	if delayed := DelayedShipments(snap.Shipments); delayed > 0 {
		alerts = append(alerts, models.Alert{
			Type:        models.AlertPerformance,
			Severity:    models.SeverityHigh,
			Title:       "Verspätete Sendungen",
			Description: fmt.Sprintf("%d Sendungen befinden sich im Ausnahmezustand", delayed),
			Count:       delayed,
			Timestamp:   ts,
		})
	}

	if expired := CountDocuments(snap.Documents, models.DocumentExpired); expired > 0 {
		alerts = append(alerts, models.Alert{
			Type:        models.AlertCompliance,
			Severity:    models.SeverityCritical,
			Title:       "Abgelaufene Compliance-Dokumente",
			Description: fmt.Sprintf("%d Dokumente sind abgelaufen und müssen erneuert werden", expired),
			Count:       expired,
			Timestamp:   ts,
		})
	}

	if share := LowMarginShare(snap.Orders, lowMarginFloor); share > lowMarginAlertShare {
		low := LowMarginOrders(snap.Orders, lowMarginFloor)
		alerts = append(alerts, models.Alert{
			Type:        models.AlertFinancial,
			Severity:    models.SeverityMedium,
			Title:       "Niedrige Margen",
			Description: fmt.Sprintf("%d Aufträge liegen unter der Margenuntergrenze", low),
			Count:       low,
			Timestamp:   ts,
		})
	}

	return alerts
}
