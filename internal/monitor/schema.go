package monitor

import "LogiPulse/internal/domain/models"

// The seven monitoring categories are declared once in a shared schema of
// categories, sections, and named metric calculators. The aggregator and
// the shape tests both read this registry, so the nested field names cannot
// drift between categories and consumers.

// MetricFunc computes one named metric from a window snapshot. Placeholder
// metrics draw from the estimator; real metrics ignore it.
type MetricFunc func(snap *models.WindowSnapshot, est *PlaceholderEstimator) any

// MetricSpec binds a metric name to its calculator.
type MetricSpec struct {
	Name    string
	Compute MetricFunc
}

// SectionSpec groups metrics under a named sub-section.
type SectionSpec struct {
	Name    string
	Metrics []MetricSpec
}

// CategorySpec is the full schema of one monitoring category.
type CategorySpec struct {
	Name     string
	Sections []SectionSpec
}

// Aggregate builds the category's nested KPI object from the snapshot.
func (c CategorySpec) Aggregate(snap *models.WindowSnapshot, est *PlaceholderEstimator) models.CategoryMetrics {
	out := make(models.CategoryMetrics, len(c.Sections))
	for _, sec := range c.Sections {
		vals := make(map[string]any, len(sec.Metrics))
		for _, m := range sec.Metrics {
			vals[m.Name] = m.Compute(snap, est)
		}
		out[sec.Name] = vals
	}
	return out
}

// Lookup returns the schema of a category by name.
func Lookup(name string) (CategorySpec, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategorySpec{}, false
}

// CategoryNames lists all known categories in registry order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}
