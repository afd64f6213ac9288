package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	models "LogiPulse/internal/domain/models"
	drepo "LogiPulse/internal/domain/repository"
	mid "LogiPulse/internal/middleware"
	"LogiPulse/internal/service/cache"
	smetrics "LogiPulse/internal/service/metrics"
	"LogiPulse/internal/service/ratelimit"
	"LogiPulse/internal/usecase"
	xhttp "LogiPulse/pkg/http"
	xlogger "LogiPulse/pkg/logger"
)

// Localized API messages. These strings are part of the public contract.
const (
	msgTenantRequired  = "Tenant-ID ist erforderlich"
	msgUnknownType     = "Unbekannter Monitoring-Typ"
	msgMissingFields   = "Pflichtfelder fehlen: tenantId, metricType, threshold"
	msgInternalError   = "Interner Serverfehler"
	msgTooManyRequests = "Zu viele Anfragen"
	msgReportOK        = "Monitoring-Daten erfolgreich abgerufen"
	msgRuleCreated     = "Alert-Regel erfolgreich erstellt"
	msgRulesOK         = "Alert-Regeln erfolgreich abgerufen"
)

// MonitoringHandler serves the tenant performance monitoring API.
type MonitoringHandler struct {
	logger     *xlogger.Logger
	reports    *usecase.MonitoringReportUseCase
	rules      drepo.AlertRuleStore
	cache      cache.BytesCache
	cacheTTL   time.Duration
	limiter    *ratelimit.Limiter
	rateCap    float64
	rateRefill float64
	authSecret string
}

type HandlerOption func(*MonitoringHandler)

// WithReportCache enables per-window response caching.
func WithReportCache(c cache.BytesCache, ttl time.Duration) HandlerOption {
	return func(h *MonitoringHandler) {
		h.cache = c
		h.cacheTTL = ttl
	}
}

// WithRateLimit enables per-tenant request throttling.
func WithRateLimit(l *ratelimit.Limiter, capacity, refillPerSec float64) HandlerOption {
	return func(h *MonitoringHandler) {
		h.limiter = l
		h.rateCap = capacity
		h.rateRefill = refillPerSec
	}
}

// WithAuthSecret enables bearer-token auth on the API group.
func WithAuthSecret(secret string) HandlerOption {
	return func(h *MonitoringHandler) { h.authSecret = secret }
}

func NewMonitoringHandler(
	logger *xlogger.Logger,
	reports *usecase.MonitoringReportUseCase,
	rules drepo.AlertRuleStore,
	opts ...HandlerOption,
) *MonitoringHandler {
	h := &MonitoringHandler{
		logger:   logger,
		reports:  reports,
		rules:    rules,
		cacheTTL: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *MonitoringHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api", mid.BearerAuth(h.authSecret))
	g.GET("/monitoring", h.GetReport)
	g.POST("/monitoring", h.CreateAlertRule)
	g.GET("/monitoring/rules", h.ListAlertRules)
}

func (h *MonitoringHandler) GetReport(c echo.Context) error {
	start := time.Now()
	defer func() {
		smetrics.MonitoringLatency.WithLabelValues("get_report").Observe(time.Since(start).Seconds())
	}()

	req := &models.MonitoringRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, msgTenantRequired)
	}

	if h.limiter != nil && !h.limiter.Allow(req.TenantID, h.rateCap, h.rateRefill) {
		return xhttp.ErrorResponse(c, http.StatusTooManyRequests, msgTooManyRequests)
	}

	cacheKey := fmt.Sprintf("monitoring|%s|%s|%s", req.TenantID, req.Type, req.TimeRange)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err == nil && ok {
			smetrics.ReportCacheHits.WithLabelValues("hit").Inc()
			return xhttp.SuccessResponse(c, json.RawMessage(b), msgReportOK)
		}
		smetrics.ReportCacheHits.WithLabelValues("miss").Inc()
	}

	report, err := h.reports.GetReport(c.Request().Context(), usecase.GetReportParams{
		TenantID:  req.TenantID,
		Type:      req.Type,
		TimeRange: req.TimeRange,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTenantRequired):
			return xhttp.BadRequestResponse(c, msgTenantRequired)
		case errors.Is(err, usecase.ErrUnknownCategory):
			return xhttp.BadRequestResponse(c, msgUnknownType)
		default:
			smetrics.MonitoringErrors.WithLabelValues("get_report").Inc()
			h.logger.Error("monitoring report failed", xlogger.Error(err))
			return xhttp.InternalServerErrorResponse(c, msgInternalError)
		}
	}

	if h.cache != nil {
		if b, err := json.Marshal(report); err == nil {
			_ = h.cache.SetBytes(cacheKey, b, h.cacheTTL)
		}
	}
	return xhttp.SuccessResponse(c, report, msgReportOK)
}

func (h *MonitoringHandler) CreateAlertRule(c echo.Context) error {
	req := &models.AlertRuleRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, msgMissingFields)
	}

	now := time.Now()
	rule := &models.AlertRule{
		ID:            fmt.Sprintf("%s-%d", req.TenantID, now.UnixNano()),
		TenantID:      req.TenantID,
		MetricType:    req.MetricType,
		Threshold:     *req.Threshold,
		Enabled:       true,
		Notifications: []string{"email"},
		CreatedAt:     now,
	}
	if req.AlertConfig != nil {
		if len(req.AlertConfig.Notifications) > 0 {
			rule.Notifications = req.AlertConfig.Notifications
		}
		rule.Conditions = req.AlertConfig.Conditions
	}

	if err := h.rules.Create(c.Request().Context(), rule); err != nil {
		smetrics.MonitoringErrors.WithLabelValues("create_rule").Inc()
		h.logger.Error("alert rule create failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c, msgInternalError)
	}
	return xhttp.SuccessResponse(c, rule, msgRuleCreated)
}

func (h *MonitoringHandler) ListAlertRules(c echo.Context) error {
	tenantID := c.QueryParam("tenantId")
	if tenantID == "" {
		return xhttp.BadRequestResponse(c, msgTenantRequired)
	}

	rules, err := h.rules.ListByTenant(c.Request().Context(), tenantID)
	if err != nil {
		smetrics.MonitoringErrors.WithLabelValues("list_rules").Inc()
		h.logger.Error("alert rule list failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c, msgInternalError)
	}
	if rules == nil {
		rules = []models.AlertRule{}
	}
	return xhttp.SuccessResponse(c, rules, msgRulesOK)
}
