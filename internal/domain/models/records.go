package models

import "time"

// ShipmentStatus enumerates shipment lifecycle states.
type ShipmentStatus string

const (
	ShipmentCreated   ShipmentStatus = "created"
	ShipmentPickedUp  ShipmentStatus = "picked_up"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentException ShipmentStatus = "exception"
	ShipmentCancelled ShipmentStatus = "cancelled"
)

// OrderStatus enumerates customer order states.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// RequestStatus enumerates transport request states.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAssigned  RequestStatus = "assigned"
	RequestCompleted RequestStatus = "completed"
	RequestRejected  RequestStatus = "rejected"
)

// DocumentStatus enumerates compliance document states.
type DocumentStatus string

const (
	DocumentApproved DocumentStatus = "approved"
	DocumentPending  DocumentStatus = "pending"
	DocumentExpired  DocumentStatus = "expired"
)

// RiskLevel is the AI-assessed risk classification of a compliance document.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ShipmentRecord is a read-only shipment snapshot within a monitoring window.
// Rating is 1..5 when the customer rated the shipment, 0 otherwise.
type ShipmentRecord struct {
	ID        string
	TenantID  string
	Status    ShipmentStatus
	CreatedAt time.Time
	Damaged   bool
	Rating    int
}

// OrderRecord is a customer order used for financial and quality metrics.
// CustomerPrice is what the tenant bills; FinalPrice is the carrier buy rate.
type OrderRecord struct {
	ID            string
	TenantID      string
	Status        OrderStatus
	CustomerPrice float64
	FinalPrice    float64
	CreatedAt     time.Time
}

// Margin returns the relative margin of the order, 0 if the customer
// price is non-positive.
func (o OrderRecord) Margin() float64 {
	if o.CustomerPrice <= 0 {
		return 0
	}
	return (o.CustomerPrice - o.FinalPrice) / o.CustomerPrice
}

// RequestRecord is a transport request used for throughput metrics.
type RequestRecord struct {
	ID        string
	TenantID  string
	Status    RequestStatus
	CreatedAt time.Time
}

// CarrierRecord carries per-carrier performance scores. Score ranges are
// 0..100 for reliability/on-time and 0..10 for damage/cost.
type CarrierRecord struct {
	ID          string
	TenantID    string
	Name        string
	Active      bool
	Reliability float64
	OnTimeScore float64
	DamageScore float64
	CostScore   float64
}

// ComplianceDocument is a regulatory document driving compliance KPIs.
type ComplianceDocument struct {
	ID        string
	TenantID  string
	Status    DocumentStatus
	RiskLevel RiskLevel
	Score     float64
	CreatedAt time.Time
}
