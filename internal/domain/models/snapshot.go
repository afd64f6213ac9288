package models

import "time"

// WindowSnapshot is the immutable per-request view of all domain
// collections inside one monitoring window. Calculators and detectors only
// ever read from it; there is no write contention between the report
// computations.
type WindowSnapshot struct {
	TenantID  string
	From      time.Time
	To        time.Time
	Shipments []ShipmentRecord
	Orders    []OrderRecord
	Requests  []RequestRecord
	Carriers  []CarrierRecord
	Documents []ComplianceDocument
}
