package usecase

import (
	"context"
	"encoding/json"
	"time"

	"LogiPulse/internal/domain/models"
	drepo "LogiPulse/internal/domain/repository"
	pkgkafka "LogiPulse/pkg/kafka"
)

// KafkaEventsHandler consumes tracking events from Kafka and writes them
// to storage.
type KafkaEventsHandler struct {
	topic   string
	storage drepo.Storage
	metrics drepo.Metrics
}

func NewKafkaEventsHandler(topic string, storage drepo.Storage, metrics drepo.Metrics) *KafkaEventsHandler {
	return &KafkaEventsHandler{topic: topic, storage: storage, metrics: metrics}
}

func (h *KafkaEventsHandler) Topic() string { return h.topic }

// incoming message schema: {tenantId, shipmentId, status, t}
func (h *KafkaEventsHandler) Handle(ctx context.Context, b []byte) error {
	var m struct {
		TenantID   string `json:"tenantId"`
		ShipmentID string `json:"shipmentId"`
		Status     string `json:"status"`
		T          int64  `json:"t"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}
	if m.T > 1e11 { // ms
		m.T = m.T / 1000
	}
	h.metrics.RecordLatency("ingest_e2e_seconds", time.Since(time.Unix(m.T, 0)).Seconds())

	start := time.Now()
	err := h.storage.Store(ctx, &models.TrackingEvent{
		TenantID:   m.TenantID,
		ShipmentID: m.ShipmentID,
		Status:     models.ShipmentStatus(m.Status),
		Timestamp:  m.T,
	})
	h.metrics.RecordLatency("ch_insert_seconds", time.Since(start).Seconds())
	if err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordEventStored("clickhouse", m.TenantID)
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaEventsHandler)(nil)
