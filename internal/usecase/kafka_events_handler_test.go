package usecase

import (
	"context"
	"errors"
	"testing"

	"LogiPulse/internal/domain/models"
)

type captureStorage struct {
	events []*models.TrackingEvent
	err    error
}

func (c *captureStorage) Init(ctx context.Context) error { return nil }
func (c *captureStorage) Store(ctx context.Context, e *models.TrackingEvent) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, e)
	return nil
}
func (c *captureStorage) StoreBatch(ctx context.Context, events []*models.TrackingEvent) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, events...)
	return nil
}
func (c *captureStorage) Health(ctx context.Context) error { return nil }
func (c *captureStorage) Close() error                     { return nil }

func TestKafkaEventsHandlerStoresTypedEvent(t *testing.T) {
	st := &captureStorage{}
	h := NewKafkaEventsHandler("tracking_events", st, noopMetrics{})

	payload := []byte(`{"tenantId":"t1","shipmentId":"SHIP-1","status":"in_transit","t":1718000000000}`)
	if err := h.Handle(context.Background(), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(st.events))
	}
	e := st.events[0]
	if e.TenantID != "t1" || e.ShipmentID != "SHIP-1" {
		t.Fatalf("unexpected event identity: %+v", e)
	}
	if e.Status != models.ShipmentInTransit {
		t.Fatalf("expected status %q, got %q", models.ShipmentInTransit, e.Status)
	}
	if e.Timestamp != 1718000000 {
		t.Fatalf("expected ms timestamp scaled to seconds, got %d", e.Timestamp)
	}
}

func TestKafkaEventsHandlerBadPayload(t *testing.T) {
	st := &captureStorage{}
	h := NewKafkaEventsHandler("tracking_events", st, noopMetrics{})
	if err := h.Handle(context.Background(), []byte("{")); err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if len(st.events) != 0 {
		t.Fatalf("expected no stored events, got %d", len(st.events))
	}
}

func TestKafkaEventsHandlerStoreFailure(t *testing.T) {
	st := &captureStorage{err: errors.New("insert failed")}
	h := NewKafkaEventsHandler("tracking_events", st, noopMetrics{})
	payload := []byte(`{"tenantId":"t1","shipmentId":"SHIP-1","status":"delivered","t":1718000000}`)
	if err := h.Handle(context.Background(), payload); err == nil {
		t.Fatalf("expected store error")
	}
}
