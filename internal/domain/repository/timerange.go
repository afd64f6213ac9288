package repository

import "time"

// RangeLabel is a supported monitoring window label.
type RangeLabel string

const (
	Range1h  RangeLabel = "1h"
	Range24h RangeLabel = "24h"
	Range7d  RangeLabel = "7d"
	Range30d RangeLabel = "30d"
)

// IsValidRange returns true if label is a supported range.
func IsValidRange(label RangeLabel) bool {
	switch label {
	case Range1h, Range24h, Range7d, Range30d:
		return true
	default:
		return false
	}
}

// DefaultRange returns the default monitoring range.
func DefaultRange() RangeLabel { return Range24h }

// NormalizeRange converts a raw string to a valid range label (or default).
// Unknown labels fall back silently, matching the API contract.
func NormalizeRange(s string) RangeLabel {
	if s == "" {
		return DefaultRange()
	}
	label := RangeLabel(s)
	if IsValidRange(label) {
		return label
	}
	return DefaultRange()
}

// Hours returns the hours-back lookup for the label.
func (r RangeLabel) Hours() int {
	switch r {
	case Range1h:
		return 1
	case Range7d:
		return 168
	case Range30d:
		return 720
	default:
		return 24
	}
}

// Buckets returns the equal-width trend bucket count for the label:
// 24 for a day, 7 for a week, 30 for a month, 12 five-minute buckets
// for the hour range.
func (r RangeLabel) Buckets() int {
	switch r {
	case Range1h:
		return 12
	case Range7d:
		return 7
	case Range30d:
		return 30
	default:
		return 24
	}
}

// Window is the resolved, immutable monitoring window of one request.
type Window struct {
	From  time.Time
	To    time.Time
	Label RangeLabel
}

// ResolveWindow normalizes the raw range string against now.
func ResolveWindow(s string, now time.Time) Window {
	label := NormalizeRange(s)
	return Window{
		From:  now.Add(-time.Duration(label.Hours()) * time.Hour),
		To:    now,
		Label: label,
	}
}
