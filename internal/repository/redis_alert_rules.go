package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"LogiPulse/internal/domain/models"
	"LogiPulse/internal/domain/repository"
)

// RedisAlertRuleStore persists tenant alert rules in a per-tenant hash.
type RedisAlertRuleStore struct {
	cli *redis.Client
}

// NewRedisAlertRuleStore creates an alert-rule store over the given client.
func NewRedisAlertRuleStore(cli *redis.Client) repository.AlertRuleStore {
	return &RedisAlertRuleStore{cli: cli}
}

func ruleKey(tenantID string) string {
	return "alert_rules:" + tenantID
}

func (s *RedisAlertRuleStore) Create(ctx context.Context, rule *models.AlertRule) error {
	if rule == nil || rule.TenantID == "" {
		return fmt.Errorf("invalid alert rule")
	}
	b, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("marshal alert rule: %w", err)
	}
	if err := s.cli.HSet(ctx, ruleKey(rule.TenantID), rule.ID, b).Err(); err != nil {
		return fmt.Errorf("store alert rule: %w", err)
	}
	return nil
}

func (s *RedisAlertRuleStore) ListByTenant(ctx context.Context, tenantID string) ([]models.AlertRule, error) {
	vals, err := s.cli.HGetAll(ctx, ruleKey(tenantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list alert rules: %w", err)
	}
	out := make([]models.AlertRule, 0, len(vals))
	for _, v := range vals {
		var r models.AlertRule
		if err := json.Unmarshal([]byte(v), &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
