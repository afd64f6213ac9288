package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"LogiPulse/internal/domain/models"
	drepo "LogiPulse/internal/domain/repository"
)

// Proc is the minimal processor interface the pipeline needs.
type Proc interface {
	Process(ctx context.Context, e *models.TrackingEvent) error
}

// BatchProc is implemented by processors that can flush several buffered
// events in one downstream call.
type BatchProc interface {
	ProcessBatch(ctx context.Context, events []*models.TrackingEvent) error
}

// IngestPipeline sits between the telematics stream and the event backend.
// It validates, throttles per tenant, and buffers when downstream is
// unavailable.
type IngestPipeline struct {
	proc     Proc
	metrics  drepo.Metrics
	maxRPS   int
	bufSize  int
	bufCh    chan *models.TrackingEvent
	stopCh   chan struct{}
	started  bool
	mu       sync.Mutex
	lastSeen map[string]time.Time // per-tenant last accepted time

	transform func(*models.TrackingEvent) *models.TrackingEvent

	bufDepthGauge func(int)
	throttleWarn  func(string)
}

type PipelineOption func(*IngestPipeline)

// WithMaxRPS sets the max events per second per tenant.
func WithMaxRPS(n int) PipelineOption {
	return func(p *IngestPipeline) {
		if n > 0 {
			p.maxRPS = n
		}
	}
}

// WithBufferSize sets the temporary buffer size when downstream is unavailable.
func WithBufferSize(n int) PipelineOption {
	return func(p *IngestPipeline) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// WithTransform sets a transformation hook applied before forwarding.
func WithTransform(fn func(*models.TrackingEvent) *models.TrackingEvent) PipelineOption {
	return func(p *IngestPipeline) { p.transform = fn }
}

// NewIngestPipeline creates a new pipeline.
func NewIngestPipeline(proc Proc, metrics drepo.Metrics, opts ...PipelineOption) *IngestPipeline {
	p := &IngestPipeline{
		proc:     proc,
		metrics:  metrics,
		maxRPS:   50,
		bufSize:  1000,
		bufCh:    make(chan *models.TrackingEvent, 1000),
		stopCh:   make(chan struct{}),
		lastSeen: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufSize != cap(p.bufCh) {
		p.bufCh = make(chan *models.TrackingEvent, p.bufSize)
	}
	p.bufDepthGauge = func(n int) { p.metrics.RecordLatency("pipeline_buffer_depth", float64(n)) }
	p.throttleWarn = func(tenant string) { p.metrics.RecordError("pipeline_throttle_" + tenant) }
	return p
}

// Start launches background flushing of buffered events.
func (p *IngestPipeline) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		backoff := 50 * time.Millisecond
		for {
			select {
			case <-p.stopCh:
				return
			case e := <-p.bufCh:
				if e == nil {
					continue
				}
				batch := p.drainBatch(e)
				if err := p.flush(ctx, batch); err != nil {
					if backoff < 2*time.Second {
						backoff *= 2
					}
					p.metrics.RecordError("pipeline_flush")
					time.Sleep(backoff)
					// requeue what fits; drop the rest
					for _, ev := range batch {
						select {
						case p.bufCh <- ev:
						default:
							p.metrics.RecordError("pipeline_buffer_drop")
						}
					}
				} else {
					backoff = 50 * time.Millisecond
				}
			}
		}
	}()
}

// drainBatch collects whatever else is already buffered, up to flushBatchMax.
func (p *IngestPipeline) drainBatch(first *models.TrackingEvent) []*models.TrackingEvent {
	const flushBatchMax = 100
	batch := []*models.TrackingEvent{first}
	for len(batch) < flushBatchMax {
		select {
		case e := <-p.bufCh:
			if e != nil {
				batch = append(batch, e)
			}
		default:
			return batch
		}
	}
	return batch
}

func (p *IngestPipeline) flush(ctx context.Context, batch []*models.TrackingEvent) error {
	if bp, ok := p.proc.(BatchProc); ok && len(batch) > 1 {
		return bp.ProcessBatch(ctx, batch)
	}
	for _, e := range batch {
		if err := p.proc.Process(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Stop stops the background flushing.
func (p *IngestPipeline) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()
	close(p.stopCh)
}

// Process validates, throttles, and forwards an event, buffering on errors.
func (p *IngestPipeline) Process(ctx context.Context, e *models.TrackingEvent) error {
	start := time.Now()
	if err := validateEvent(e); err != nil {
		p.metrics.RecordError("pipeline_validate")
		return err
	}
	if p.transform != nil {
		e = p.transform(e)
		if err := validateEvent(e); err != nil {
			p.metrics.RecordError("pipeline_transform_invalid")
			return err
		}
	}
	if !p.allow(e.TenantID, start) {
		// throttled; record and drop silently
		p.metrics.RecordError("pipeline_throttle")
		if p.throttleWarn != nil {
			p.throttleWarn(e.TenantID)
		}
		return nil
	}

	if err := p.proc.Process(ctx, e); err != nil {
		p.metrics.RecordError("pipeline_process")
		select {
		case p.bufCh <- e:
			if p.bufDepthGauge != nil {
				p.bufDepthGauge(len(p.bufCh))
			}
		default:
			p.metrics.RecordError("pipeline_buffer_full")
		}
		return fmt.Errorf("pipeline downstream: %w", err)
	}
	p.metrics.RecordLatency("pipeline_process", time.Since(start).Seconds())
	return nil
}

func validateEvent(e *models.TrackingEvent) error {
	if e == nil {
		return fmt.Errorf("event nil")
	}
	if e.TenantID == "" {
		return fmt.Errorf("tenant id empty")
	}
	if e.ShipmentID == "" {
		return fmt.Errorf("shipment id empty")
	}
	if e.Status == "" {
		return fmt.Errorf("status empty")
	}
	if e.Timestamp <= 0 {
		return fmt.Errorf("timestamp invalid")
	}
	return nil
}

func (p *IngestPipeline) allow(tenantID string, now time.Time) bool {
	if p.maxRPS <= 0 {
		return true
	}
	last := p.lastSeen[tenantID]
	if last.IsZero() {
		p.lastSeen[tenantID] = now
		return true
	}
	if now.Sub(last) < time.Second/time.Duration(p.maxRPS) {
		return false
	}
	p.lastSeen[tenantID] = now
	return true
}
