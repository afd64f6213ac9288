package models

import "time"

// AlertRule is a tenant-defined threshold rule created via the monitoring
// POST endpoint and evaluated by downstream notification services.
type AlertRule struct {
	ID            string         `json:"id"`
	TenantID      string         `json:"tenantId"`
	MetricType    string         `json:"metricType"`
	Threshold     float64        `json:"threshold"`
	Enabled       bool           `json:"enabled"`
	Notifications []string       `json:"notifications"`
	Conditions    map[string]any `json:"conditions"`
	CreatedAt     time.Time      `json:"createdAt"`
}
