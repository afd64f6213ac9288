package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"LogiPulse/internal/domain/models"
	"LogiPulse/internal/monitor"
)

type fakeRecordStore struct {
	shipments []models.ShipmentRecord
	orders    []models.OrderRecord
	requests  []models.RequestRecord
	carriers  []models.CarrierRecord
	documents []models.ComplianceDocument
	err       error
}

func (f *fakeRecordStore) Shipments(ctx context.Context, tenantID string, from, to time.Time) ([]models.ShipmentRecord, error) {
	return f.shipments, f.err
}
func (f *fakeRecordStore) Orders(ctx context.Context, tenantID string, from, to time.Time) ([]models.OrderRecord, error) {
	return f.orders, f.err
}
func (f *fakeRecordStore) Requests(ctx context.Context, tenantID string, from, to time.Time) ([]models.RequestRecord, error) {
	return f.requests, f.err
}
func (f *fakeRecordStore) Carriers(ctx context.Context, tenantID string) ([]models.CarrierRecord, error) {
	return f.carriers, f.err
}
func (f *fakeRecordStore) Documents(ctx context.Context, tenantID string, from, to time.Time) ([]models.ComplianceDocument, error) {
	return f.documents, f.err
}

type noopMetrics struct{}

func (noopMetrics) RecordEventStored(backend, tenantID string)    {}
func (noopMetrics) RecordError(kind string)                       {}
func (noopMetrics) RecordLastEventTime(tenantID string, ts int64) {}
func (noopMetrics) RecordLatency(op string, seconds float64)      {}

func newTestUseCase(store *fakeRecordStore) *MonitoringReportUseCase {
	return NewMonitoringReportUseCase(
		store,
		monitor.NewRegistry(monitor.NewSeededEstimator(1)),
		monitor.NewAlertEngine(),
		monitor.NewAnomalyEngine(),
		monitor.NewTrendEngine(),
		noopMetrics{},
	)
}

func TestGetReportTenantRequired(t *testing.T) {
	uc := newTestUseCase(&fakeRecordStore{})
	_, err := uc.GetReport(context.Background(), GetReportParams{})
	if !errors.Is(err, ErrTenantRequired) {
		t.Fatalf("expected ErrTenantRequired, got %v", err)
	}
}

func TestGetReportUnknownCategory(t *testing.T) {
	uc := newTestUseCase(&fakeRecordStore{})
	_, err := uc.GetReport(context.Background(), GetReportParams{TenantID: "t1", Type: "bogus"})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGetReportDefaultsToOverview(t *testing.T) {
	uc := newTestUseCase(&fakeRecordStore{})
	report, err := uc.GetReport(context.Background(), GetReportParams{TenantID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sec := range []string{"operational", "performance", "quality", "efficiency"} {
		if _, ok := report.Metrics[sec]; !ok {
			t.Fatalf("missing overview section %q", sec)
		}
	}
	if report.TimeRange.Duration != "24h" {
		t.Fatalf("expected default duration 24h, got %q", report.TimeRange.Duration)
	}
}

func TestGetReportUnknownRangeFallsBack(t *testing.T) {
	uc := newTestUseCase(&fakeRecordStore{})
	report, err := uc.GetReport(context.Background(), GetReportParams{TenantID: "t1", Type: "overview", TimeRange: "99x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TimeRange.Duration != "24h" {
		t.Fatalf("expected fallback duration 24h, got %q", report.TimeRange.Duration)
	}
	if got := report.TimeRange.To.Sub(report.TimeRange.From); got != 24*time.Hour {
		t.Fatalf("expected 24h window, got %v", got)
	}
}

func TestGetReportIncludesAlerts(t *testing.T) {
	store := &fakeRecordStore{
		shipments: []models.ShipmentRecord{
			{Status: models.ShipmentException, CreatedAt: time.Now().Add(-time.Hour)},
		},
	}
	uc := newTestUseCase(store)
	report, err := uc.GetReport(context.Background(), GetReportParams{TenantID: "t1", Type: "overview"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Alerts) != 1 || report.Alerts[0].Type != models.AlertPerformance {
		t.Fatalf("expected one performance alert, got %+v", report.Alerts)
	}
	if report.Anomalies == nil {
		t.Fatalf("expected non-nil anomalies slice")
	}
}

func TestGetReportStoreFailure(t *testing.T) {
	store := &fakeRecordStore{err: errors.New("connection refused")}
	uc := newTestUseCase(store)
	_, err := uc.GetReport(context.Background(), GetReportParams{TenantID: "t1", Type: "overview"})
	if err == nil {
		t.Fatalf("expected error")
	}
}
