package usecase

import (
	"context"
	"fmt"
	"time"

	"LogiPulse/internal/domain/models"
	drepo "LogiPulse/internal/domain/repository"
)

// EventProcessor routes tracking events to the configured backend.
type EventProcessor struct {
	pub     drepo.Publisher
	store   drepo.Storage
	metrics drepo.Metrics
	backend string
}

func NewEventProcessor(pub drepo.Publisher, store drepo.Storage, metrics drepo.Metrics, backend string) *EventProcessor {
	return &EventProcessor{pub: pub, store: store, metrics: metrics, backend: backend}
}

// Process routes a single tracking event.
func (p *EventProcessor) Process(ctx context.Context, e *models.TrackingEvent) error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.Publish(ctx, e)
	case "clickhouse":
		err = p.store.Store(ctx, e)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process")
		return fmt.Errorf("process event: %w", err)
	}

	p.metrics.RecordEventStored(p.backend, e.TenantID)
	p.metrics.RecordLatency("process", time.Since(start).Seconds())
	return nil
}

// ProcessBatch routes multiple tracking events at once.
func (p *EventProcessor) ProcessBatch(ctx context.Context, events []*models.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.PublishBatch(ctx, events)
	case "clickhouse":
		err = p.store.StoreBatch(ctx, events)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process_batch")
		return fmt.Errorf("process batch: %w", err)
	}

	for _, e := range events {
		p.metrics.RecordEventStored(p.backend, e.TenantID)
	}
	p.metrics.RecordLatency("process_batch", time.Since(start).Seconds())
	return nil
}

// Close releases publisher and storage resources.
func (p *EventProcessor) Close() error {
	var first error
	if p.pub != nil {
		if err := p.pub.Close(); err != nil {
			first = err
		}
	}
	if p.store != nil {
		if err := p.store.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
