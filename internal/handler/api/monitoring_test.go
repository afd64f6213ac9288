package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"LogiPulse/internal/domain/models"
	"LogiPulse/internal/monitor"
	"LogiPulse/internal/service/cache"
	"LogiPulse/internal/usecase"
	xlogger "LogiPulse/pkg/logger"
)

type stubRecordStore struct{}

func (stubRecordStore) Shipments(ctx context.Context, tenantID string, from, to time.Time) ([]models.ShipmentRecord, error) {
	return nil, nil
}
func (stubRecordStore) Orders(ctx context.Context, tenantID string, from, to time.Time) ([]models.OrderRecord, error) {
	return nil, nil
}
func (stubRecordStore) Requests(ctx context.Context, tenantID string, from, to time.Time) ([]models.RequestRecord, error) {
	return nil, nil
}
func (stubRecordStore) Carriers(ctx context.Context, tenantID string) ([]models.CarrierRecord, error) {
	return nil, nil
}
func (stubRecordStore) Documents(ctx context.Context, tenantID string, from, to time.Time) ([]models.ComplianceDocument, error) {
	return nil, nil
}

type stubMetrics struct{}

func (stubMetrics) RecordEventStored(backend, tenantID string)    {}
func (stubMetrics) RecordError(kind string)                       {}
func (stubMetrics) RecordLastEventTime(tenantID string, ts int64) {}
func (stubMetrics) RecordLatency(op string, seconds float64)      {}

type memRuleStore struct {
	rules []*models.AlertRule
}

func (s *memRuleStore) Create(ctx context.Context, rule *models.AlertRule) error {
	s.rules = append(s.rules, rule)
	return nil
}

func (s *memRuleStore) ListByTenant(ctx context.Context, tenantID string) ([]models.AlertRule, error) {
	out := make([]models.AlertRule, 0, len(s.rules))
	for _, r := range s.rules {
		if r.TenantID == tenantID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func newTestHandler(t *testing.T, opts ...HandlerOption) (*MonitoringHandler, *memRuleStore) {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	reports := usecase.NewMonitoringReportUseCase(
		stubRecordStore{},
		monitor.NewRegistry(monitor.NewSeededEstimator(1)),
		monitor.NewAlertEngine(),
		monitor.NewAnomalyEngine(),
		monitor.NewTrendEngine(),
		stubMetrics{},
	)
	rules := &memRuleStore{}
	return NewMonitoringHandler(l, reports, rules, opts...), rules
}

func doRequest(h *MonitoringHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetReportMissingTenant(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/monitoring", nil)
	rec := doRequest(h, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Tenant-ID ist erforderlich"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestGetReportUnknownType(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/monitoring?tenantId=t1&type=bogus", nil)
	rec := doRequest(h, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Unbekannter Monitoring-Typ"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestGetReportSuccessEnvelope(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/monitoring?tenantId=t1&type=overview&timeRange=24h", nil)
	rec := doRequest(h, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Metrics   map[string]map[string]any `json:"metrics"`
			Alerts    []models.Alert            `json:"alerts"`
			Anomalies []models.Anomaly          `json:"anomalies"`
			TimeRange struct {
				Duration string `json:"duration"`
			} `json:"timeRange"`
		} `json:"data"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success=true")
	}
	if body.Data.TimeRange.Duration != "24h" {
		t.Fatalf("expected duration 24h, got %q", body.Data.TimeRange.Duration)
	}
	for _, sec := range []string{"operational", "performance", "quality", "efficiency"} {
		if _, ok := body.Data.Metrics[sec]; !ok {
			t.Fatalf("missing section %q", sec)
		}
	}
	if body.Data.Alerts == nil || len(body.Data.Alerts) != 0 {
		t.Fatalf("expected empty alerts, got %v", body.Data.Alerts)
	}
}

func TestGetReportCached(t *testing.T) {
	h, _ := newTestHandler(t, WithReportCache(cache.NewTTLCache(), time.Minute))

	first := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/monitoring?tenantId=t1&type=overview", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	second := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/monitoring?tenantId=t1&type=overview", nil))
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200 on cached read, got %d", second.Code)
	}
	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(second.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal cached: %v", err)
	}
	if !body.Success || len(body.Data) == 0 {
		t.Fatalf("unexpected cached envelope %s", second.Body.String())
	}
}

func TestGetReportUnauthorized(t *testing.T) {
	h, _ := newTestHandler(t, WithAuthSecret("topsecret"))
	req := httptest.NewRequest(http.MethodGet, "/api/monitoring?tenantId=t1", nil)
	rec := doRequest(h, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Nicht autorisiert"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestCreateAlertRuleMissingFields(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/monitoring", strings.NewReader(`{"tenantId":"t1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(h, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Pflichtfelder fehlen: tenantId, metricType, threshold"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestCreateAlertRule(t *testing.T) {
	h, rules := newTestHandler(t)
	payload := `{"tenantId":"t1","metricType":"onTimeDeliveryRate","threshold":95,"alertConfig":{"notifications":["sms"],"conditions":{"window":"24h"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/monitoring", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(h, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool             `json:"success"`
		Data    models.AlertRule `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rule := body.Data
	if rule.TenantID != "t1" || rule.MetricType != "onTimeDeliveryRate" || rule.Threshold != 95 {
		t.Fatalf("unexpected rule %+v", rule)
	}
	if !rule.Enabled {
		t.Fatalf("expected rule enabled by default")
	}
	if len(rule.Notifications) != 1 || rule.Notifications[0] != "sms" {
		t.Fatalf("unexpected notifications %v", rule.Notifications)
	}
	if !strings.HasPrefix(rule.ID, "t1-") {
		t.Fatalf("unexpected rule id %q", rule.ID)
	}
	if len(rules.rules) != 1 {
		t.Fatalf("expected rule persisted, got %d", len(rules.rules))
	}
}

func TestListAlertRules(t *testing.T) {
	h, rules := newTestHandler(t)
	rules.rules = []*models.AlertRule{
		{ID: "t1-1", TenantID: "t1", MetricType: "damageRate", Threshold: 2},
		{ID: "t2-1", TenantID: "t2", MetricType: "damageRate", Threshold: 2},
	}

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/monitoring/rules?tenantId=t1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Success bool               `json:"success"`
		Data    []models.AlertRule `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].ID != "t1-1" {
		t.Fatalf("unexpected rules %+v", body.Data)
	}

	missing := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/monitoring/rules", nil))
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without tenantId, got %d", missing.Code)
	}
}
