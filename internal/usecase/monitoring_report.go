package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"LogiPulse/internal/domain/models"
	drepo "LogiPulse/internal/domain/repository"
	"LogiPulse/internal/domain/service"
	"LogiPulse/internal/monitor"
)

// Sentinel errors the handler maps onto its localized 400 bodies.
var (
	ErrTenantRequired  = errors.New("tenant id required")
	ErrUnknownCategory = errors.New("unknown monitoring category")
)

// MonitoringReportUseCase builds a full monitoring report for one tenant
// and window: category metrics, alerts, anomalies, and trends.
type MonitoringReportUseCase struct {
	store     drepo.RecordStore
	registry  *monitor.Registry
	alerts    service.AlertDetector
	anomalies service.AnomalyDetector
	trends    service.TrendSynthesizer
	metrics   drepo.Metrics
	timeout   time.Duration
}

func NewMonitoringReportUseCase(
	store drepo.RecordStore,
	registry *monitor.Registry,
	alerts service.AlertDetector,
	anomalies service.AnomalyDetector,
	trends service.TrendSynthesizer,
	metrics drepo.Metrics,
) *MonitoringReportUseCase {
	return &MonitoringReportUseCase{
		store:     store,
		registry:  registry,
		alerts:    alerts,
		anomalies: anomalies,
		trends:    trends,
		metrics:   metrics,
		timeout:   10 * time.Second,
	}
}

type GetReportParams struct {
	TenantID  string
	Type      string
	TimeRange string
}

func (uc *MonitoringReportUseCase) GetReport(ctx context.Context, p GetReportParams) (*models.MonitoringReport, error) {
	if p.TenantID == "" {
		return nil, ErrTenantRequired
	}
	if p.Type == "" {
		p.Type = "overview"
	}
	agg, ok := uc.registry.Aggregator(p.Type)
	if !ok {
		return nil, ErrUnknownCategory
	}

	window := drepo.ResolveWindow(p.TimeRange, time.Now())

	// Overall timeout
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	snap, err := uc.fetchSnapshot(ctx, p.TenantID, window)
	if err != nil {
		uc.metrics.RecordError("record_fetch")
		return nil, fmt.Errorf("fetch window records: %w", err)
	}
	uc.metrics.RecordLatency("record_fetch", time.Since(start).Seconds())

	report := &models.MonitoringReport{
		Timestamp: time.Now(),
		TimeRange: models.TimeRangeInfo{
			From:     window.From,
			To:       window.To,
			Duration: string(window.Label),
		},
	}

	type item struct {
		name string
		val  interface{}
	}
	ch := make(chan item, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		ch <- item{"metrics", agg.Aggregate(snap)}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		ch <- item{"alerts", uc.alerts.Detect(snap)}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		ch <- item{"anomalies", uc.anomalies.Detect(snap)}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		ch <- item{"trends", uc.trends.Synthesize(snap, window.Label.Buckets())}
	}()

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		switch it.name {
		case "metrics":
			report.Metrics = it.val.(models.CategoryMetrics)
		case "alerts":
			report.Alerts = it.val.([]models.Alert)
		case "anomalies":
			report.Anomalies = it.val.([]models.Anomaly)
		case "trends":
			report.Trends = it.val.(models.TrendSet)
		}
	}

	uc.metrics.RecordLatency("report", time.Since(start).Seconds())
	return report, nil
}

// fetchSnapshot loads the five tenant collections concurrently. The first
// failing fetch fails the whole snapshot.
func (uc *MonitoringReportUseCase) fetchSnapshot(ctx context.Context, tenantID string, w drepo.Window) (*models.WindowSnapshot, error) {
	snap := &models.WindowSnapshot{TenantID: tenantID, From: w.From, To: w.To}

	type item struct {
		name string
		val  interface{}
		err  error
	}
	ch := make(chan item, 5)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.store.Shipments(ctx, tenantID, w.From, w.To)
		ch <- item{"shipments", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.store.Orders(ctx, tenantID, w.From, w.To)
		ch <- item{"orders", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.store.Requests(ctx, tenantID, w.From, w.To)
		ch <- item{"requests", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.store.Carriers(ctx, tenantID)
		ch <- item{"carriers", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.store.Documents(ctx, tenantID, w.From, w.To)
		ch <- item{"documents", v, err}
	}()

	go func() { wg.Wait(); close(ch) }()

	var firstErr error
	for it := range ch {
		if it.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", it.name, it.err)
			}
			continue
		}
		switch it.name {
		case "shipments":
			snap.Shipments = it.val.([]models.ShipmentRecord)
		case "orders":
			snap.Orders = it.val.([]models.OrderRecord)
		case "requests":
			snap.Requests = it.val.([]models.RequestRecord)
		case "carriers":
			snap.Carriers = it.val.([]models.CarrierRecord)
		case "documents":
			snap.Documents = it.val.([]models.ComplianceDocument)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return snap, nil
}
