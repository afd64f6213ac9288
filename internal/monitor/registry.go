package monitor

import (
	"LogiPulse/internal/domain/models"
	"LogiPulse/internal/domain/service"
)

// Registry resolves category names to aggregators bound to one shared
// estimator instance.
type Registry struct {
	est *PlaceholderEstimator
}

// NewRegistry returns a registry over the schema and the given estimator.
func NewRegistry(est *PlaceholderEstimator) *Registry {
	return &Registry{est: est}
}

// Aggregator returns the aggregator of a category, or false for an unknown
// category name.
func (r *Registry) Aggregator(name string) (service.CategoryAggregator, bool) {
	spec, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return boundCategory{spec: spec, est: r.est}, true
}

type boundCategory struct {
	spec CategorySpec
	est  *PlaceholderEstimator
}

func (b boundCategory) Aggregate(snap *models.WindowSnapshot) models.CategoryMetrics {
	return b.spec.Aggregate(snap, b.est)
}
