package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"LogiPulse/internal/domain/models"
	"LogiPulse/internal/domain/repository"
	pkgkafka "LogiPulse/pkg/kafka"
)

// ClickHouseEventStorage implements Storage for shipment tracking events.
type ClickHouseEventStorage struct {
	db    *sql.DB
	table string
}

// NewClickHouseEventStorage creates ClickHouse tracking-event storage.
func NewClickHouseEventStorage(db *sql.DB, table string) repository.Storage {
	return &ClickHouseEventStorage{db: db, table: table}
}

func (s *ClickHouseEventStorage) Init(ctx context.Context) error {
	return nil // Schema init in pkg
}

func (s *ClickHouseEventStorage) Store(ctx context.Context, e *models.TrackingEvent) error {
	q := fmt.Sprintf("INSERT INTO %s (ts, tenant_id, shipment_id, status, event_id) VALUES (?, ?, ?, ?, ?)", s.table)
	// Idempotency key derived from shipment+timestamp
	eventID := fmt.Sprintf("%s-%d", e.ShipmentID, e.Timestamp)
	_, err := s.db.ExecContext(ctx, q,
		time.Unix(e.Timestamp, 0),
		e.TenantID,
		e.ShipmentID,
		e.Status,
		eventID,
	)
	return err
}

func (s *ClickHouseEventStorage) StoreBatch(ctx context.Context, events []*models.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}
	// Multi-row VALUES insert to reduce round-trips, chunked at 2000 rows.
	const chunkSize = 2000
	for start := 0; start < len(events); start += chunkSize {
		end := start + chunkSize
		if end > len(events) {
			end = len(events)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*5)
		for _, e := range events[start:end] {
			if e == nil || e.TenantID == "" || e.Timestamp == 0 {
				continue
			}
			eventID := fmt.Sprintf("%s-%d", e.ShipmentID, e.Timestamp)
			values = append(values, "(?, ?, ?, ?, ?)")
			args = append(args,
				time.Unix(e.Timestamp, 0),
				e.TenantID,
				e.ShipmentID,
				e.Status,
				eventID,
			)
		}
		if len(values) == 0 {
			continue
		}
		q := fmt.Sprintf("INSERT INTO %s (ts, tenant_id, shipment_id, status, event_id) VALUES %s", s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *ClickHouseEventStorage) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseEventStorage) Close() error {
	return nil // Managed by pkg
}

// KafkaEventPublisher implements Publisher for Kafka.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaEventPublisher creates a Kafka tracking-event publisher.
func NewKafkaEventPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, e *models.TrackingEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(e.TenantID), map[string]interface{}{
		"tenantId":   e.TenantID,
		"shipmentId": e.ShipmentID,
		"status":     e.Status,
		"t":          e.Timestamp,
	})
}

func (p *KafkaEventPublisher) PublishBatch(ctx context.Context, events []*models.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(events))
	for i, e := range events {
		msgs[i] = pkgkafka.Message{
			Key: []byte(e.TenantID),
			Value: map[string]interface{}{
				"tenantId":   e.TenantID,
				"shipmentId": e.ShipmentID,
				"status":     e.Status,
				"t":          e.Timestamp,
			},
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
