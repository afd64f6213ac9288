package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
)

type fakeProc struct {
	events  []*models.TrackingEvent
	batches [][]*models.TrackingEvent
	err     error
}

func (f *fakeProc) Process(ctx context.Context, e *models.TrackingEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeProc) ProcessBatch(ctx context.Context, events []*models.TrackingEvent) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, events)
	return nil
}

type pipeMetrics struct{}

func (pipeMetrics) RecordEventStored(backend, tenantID string)    {}
func (pipeMetrics) RecordError(kind string)                       {}
func (pipeMetrics) RecordLastEventTime(tenantID string, ts int64) {}
func (pipeMetrics) RecordLatency(op string, seconds float64)      {}

func validTrackingEvent(tenant string) *models.TrackingEvent {
	return &models.TrackingEvent{
		TenantID:   tenant,
		ShipmentID: "SHIP-1",
		Status:     "IN_TRANSIT",
		Timestamp:  time.Now().Unix(),
	}
}

func TestPipelineRejectsInvalidEvent(t *testing.T) {
	proc := &fakeProc{}
	p := NewIngestPipeline(proc, pipeMetrics{})

	e := validTrackingEvent("t1")
	e.TenantID = ""
	if err := p.Process(context.Background(), e); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(proc.events) != 0 {
		t.Fatalf("invalid event must not reach processor")
	}
}

func TestPipelineForwardsValidEvent(t *testing.T) {
	proc := &fakeProc{}
	p := NewIngestPipeline(proc, pipeMetrics{})

	if err := p.Process(context.Background(), validTrackingEvent("t1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(proc.events) != 1 {
		t.Fatalf("expected 1 forwarded event, got %d", len(proc.events))
	}
}

func TestPipelineThrottlesPerTenant(t *testing.T) {
	proc := &fakeProc{}
	p := NewIngestPipeline(proc, pipeMetrics{}, WithMaxRPS(1))

	if err := p.Process(context.Background(), validTrackingEvent("t1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// second event within the same second is dropped silently
	if err := p.Process(context.Background(), validTrackingEvent("t1")); err != nil {
		t.Fatalf("throttled event must not error: %v", err)
	}
	if len(proc.events) != 1 {
		t.Fatalf("expected throttled event dropped, got %d forwarded", len(proc.events))
	}
}

func TestPipelineBuffersOnDownstreamFailure(t *testing.T) {
	proc := &fakeProc{err: errors.New("backend down")}
	p := NewIngestPipeline(proc, pipeMetrics{}, WithBufferSize(4))

	if err := p.Process(context.Background(), validTrackingEvent("t1")); err == nil {
		t.Fatalf("expected downstream error")
	}
	if len(p.bufCh) != 1 {
		t.Fatalf("expected event buffered, got %d", len(p.bufCh))
	}
}

func TestPipelineFlushUsesBatchProcessor(t *testing.T) {
	proc := &fakeProc{}
	p := NewIngestPipeline(proc, pipeMetrics{}, WithBufferSize(8))

	p.bufCh <- validTrackingEvent("t1")
	p.bufCh <- validTrackingEvent("t1")
	first := <-p.bufCh

	batch := p.drainBatch(first)
	if len(batch) != 2 {
		t.Fatalf("expected batch of 2, got %d", len(batch))
	}
	if err := p.flush(context.Background(), batch); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}
	if len(proc.batches) != 1 || len(proc.batches[0]) != 2 {
		t.Fatalf("expected one batch of 2, got %+v", proc.batches)
	}
}

func TestPipelineTransform(t *testing.T) {
	proc := &fakeProc{}
	p := NewIngestPipeline(proc, pipeMetrics{}, WithTransform(func(e *models.TrackingEvent) *models.TrackingEvent {
		e.Status = "DELIVERED"
		return e
	}))

	if err := p.Process(context.Background(), validTrackingEvent("t1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(proc.events) != 1 || proc.events[0].Status != "DELIVERED" {
		t.Fatalf("expected transformed event, got %+v", proc.events)
	}
}
