package models

// TrackingEvent is a shipment status update delivered by the telematics
// stream. Timestamp is unix seconds.
type TrackingEvent struct {
	TenantID   string
	ShipmentID string
	Status     ShipmentStatus
	Timestamp  int64
}
