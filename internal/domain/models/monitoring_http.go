package models

// Requests for monitoring HTTP endpoints. Defined in domain for consistency and reuse.

type MonitoringRequest struct {
	TenantID  string `query:"tenantId" json:"tenantId" validate:"required"`
	Type      string `query:"type" json:"type" default:"overview"`
	TimeRange string `query:"timeRange" json:"timeRange" default:"24h"`
}

// AlertConfig is the optional notification section of an alert-rule request.
type AlertConfig struct {
	Notifications []string       `json:"notifications"`
	Conditions    map[string]any `json:"conditions"`
}

type AlertRuleRequest struct {
	TenantID    string       `json:"tenantId" validate:"required"`
	MetricType  string       `json:"metricType" validate:"required"`
	Threshold   *float64     `json:"threshold" validate:"required"`
	AlertConfig *AlertConfig `json:"alertConfig"`
}
