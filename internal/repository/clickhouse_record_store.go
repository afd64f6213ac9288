package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"LogiPulse/internal/domain/models"
	"LogiPulse/internal/domain/repository"
)

// ClickHouseRecordStore reads the per-tenant domain collections backing a
// monitoring report. Every query is scoped to the tenant.
type ClickHouseRecordStore struct {
	db       *sql.DB
	database string
}

// NewClickHouseRecordStore creates a record store over the given database.
func NewClickHouseRecordStore(db *sql.DB, database string) repository.RecordStore {
	return &ClickHouseRecordStore{db: db, database: database}
}

func (s *ClickHouseRecordStore) table(name string) string {
	return s.database + "." + name
}

func (s *ClickHouseRecordStore) Shipments(ctx context.Context, tenantID string, from, to time.Time) ([]models.ShipmentRecord, error) {
	q := fmt.Sprintf(`SELECT id, status, created_at, damaged, rating
		FROM %s WHERE tenant_id = ? AND created_at >= ? AND created_at <= ?`, s.table("shipments"))
	rows, err := s.db.QueryContext(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query shipments: %w", err)
	}
	defer rows.Close()

	var out []models.ShipmentRecord
	for rows.Next() {
		var r models.ShipmentRecord
		var status string
		var damaged uint8
		if err := rows.Scan(&r.ID, &status, &r.CreatedAt, &damaged, &r.Rating); err != nil {
			return nil, err
		}
		r.TenantID = tenantID
		r.Status = models.ShipmentStatus(status)
		r.Damaged = damaged != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *ClickHouseRecordStore) Orders(ctx context.Context, tenantID string, from, to time.Time) ([]models.OrderRecord, error) {
	q := fmt.Sprintf(`SELECT id, status, customer_price, final_price, created_at
		FROM %s WHERE tenant_id = ? AND created_at >= ? AND created_at <= ?`, s.table("orders"))
	rows, err := s.db.QueryContext(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []models.OrderRecord
	for rows.Next() {
		var r models.OrderRecord
		var status string
		if err := rows.Scan(&r.ID, &status, &r.CustomerPrice, &r.FinalPrice, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.TenantID = tenantID
		r.Status = models.OrderStatus(status)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *ClickHouseRecordStore) Requests(ctx context.Context, tenantID string, from, to time.Time) ([]models.RequestRecord, error) {
	q := fmt.Sprintf(`SELECT id, status, created_at
		FROM %s WHERE tenant_id = ? AND created_at >= ? AND created_at <= ?`, s.table("transport_requests"))
	rows, err := s.db.QueryContext(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query transport requests: %w", err)
	}
	defer rows.Close()

	var out []models.RequestRecord
	for rows.Next() {
		var r models.RequestRecord
		var status string
		if err := rows.Scan(&r.ID, &status, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.TenantID = tenantID
		r.Status = models.RequestStatus(status)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *ClickHouseRecordStore) Carriers(ctx context.Context, tenantID string) ([]models.CarrierRecord, error) {
	q := fmt.Sprintf(`SELECT id, name, active, reliability, on_time_score, damage_score, cost_score
		FROM %s WHERE tenant_id = ?`, s.table("carriers"))
	rows, err := s.db.QueryContext(ctx, q, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query carriers: %w", err)
	}
	defer rows.Close()

	var out []models.CarrierRecord
	for rows.Next() {
		var r models.CarrierRecord
		var active uint8
		if err := rows.Scan(&r.ID, &r.Name, &active, &r.Reliability, &r.OnTimeScore, &r.DamageScore, &r.CostScore); err != nil {
			return nil, err
		}
		r.TenantID = tenantID
		r.Active = active != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *ClickHouseRecordStore) Documents(ctx context.Context, tenantID string, from, to time.Time) ([]models.ComplianceDocument, error) {
	q := fmt.Sprintf(`SELECT id, status, risk_level, score, created_at
		FROM %s WHERE tenant_id = ? AND created_at >= ? AND created_at <= ?`, s.table("compliance_documents"))
	rows, err := s.db.QueryContext(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query compliance documents: %w", err)
	}
	defer rows.Close()

	var out []models.ComplianceDocument
	for rows.Next() {
		var r models.ComplianceDocument
		var status, risk string
		if err := rows.Scan(&r.ID, &status, &risk, &r.Score, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.TenantID = tenantID
		r.Status = models.DocumentStatus(status)
		r.RiskLevel = models.RiskLevel(risk)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SchemaStatements returns the idempotent DDL for all monitoring tables.
func SchemaStatements(database string) []string {
	return []string{
		fmt.Sprintf(`CREATE DATABASE IF NOT EXISTS %s`, database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.tracking_events (
			ts DateTime,
			tenant_id String,
			shipment_id String,
			status String,
			event_id String
		) ENGINE = ReplacingMergeTree
		ORDER BY (tenant_id, shipment_id, ts)`, database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.shipments (
			id String,
			tenant_id String,
			status String,
			created_at DateTime,
			damaged UInt8,
			rating Int32
		) ENGINE = ReplacingMergeTree
		ORDER BY (tenant_id, created_at, id)`, database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.orders (
			id String,
			tenant_id String,
			status String,
			customer_price Float64,
			final_price Float64,
			created_at DateTime
		) ENGINE = ReplacingMergeTree
		ORDER BY (tenant_id, created_at, id)`, database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.transport_requests (
			id String,
			tenant_id String,
			status String,
			created_at DateTime
		) ENGINE = ReplacingMergeTree
		ORDER BY (tenant_id, created_at, id)`, database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.carriers (
			id String,
			tenant_id String,
			name String,
			active UInt8,
			reliability Float64,
			on_time_score Float64,
			damage_score Float64,
			cost_score Float64
		) ENGINE = ReplacingMergeTree
		ORDER BY (tenant_id, id)`, database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.compliance_documents (
			id String,
			tenant_id String,
			status String,
			risk_level String,
			score Float64,
			created_at DateTime
		) ENGINE = ReplacingMergeTree
		ORDER BY (tenant_id, created_at, id)`, database),
	}
}
