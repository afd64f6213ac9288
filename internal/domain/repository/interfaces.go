package repository

import (
	"context"
	"time"

	"LogiPulse/internal/domain/models"
)

// EventStream is a live feed of shipment tracking events (WebSocket-backed).
type EventStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.TrackingEvent, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Publisher forwards tracking events to the message bus.
type Publisher interface {
	Publish(ctx context.Context, e *models.TrackingEvent) error
	PublishBatch(ctx context.Context, events []*models.TrackingEvent) error
	Close() error
}

// Storage persists tracking events.
type Storage interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, e *models.TrackingEvent) error
	StoreBatch(ctx context.Context, events []*models.TrackingEvent) error
	Health(ctx context.Context) error // ping
	Close() error
}

// RecordStore reads the per-tenant domain collections a monitoring report
// is derived from. Implementations must scope every query to the tenant.
type RecordStore interface {
	Shipments(ctx context.Context, tenantID string, from, to time.Time) ([]models.ShipmentRecord, error)
	Orders(ctx context.Context, tenantID string, from, to time.Time) ([]models.OrderRecord, error)
	Requests(ctx context.Context, tenantID string, from, to time.Time) ([]models.RequestRecord, error)
	Carriers(ctx context.Context, tenantID string) ([]models.CarrierRecord, error)
	Documents(ctx context.Context, tenantID string, from, to time.Time) ([]models.ComplianceDocument, error)
}

// AlertRuleStore persists tenant alert rules.
type AlertRuleStore interface {
	Create(ctx context.Context, rule *models.AlertRule) error
	ListByTenant(ctx context.Context, tenantID string) ([]models.AlertRule, error)
}

// Metrics records operational telemetry.
type Metrics interface {
	RecordEventStored(backend, tenantID string)
	RecordError(kind string)
	RecordLastEventTime(tenantID string, ts int64)
	RecordLatency(op string, seconds float64)
}
