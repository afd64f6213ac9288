package monitor

import (
	"math"
	"time"

	"LogiPulse/internal/domain/models"
)

// SynthesizeSeries derives direction and magnitude from an equal-width
// bucketed series by comparing the last bucket against the first. A series
// shorter than two buckets is flat. A zero first bucket guards the percent
// change to 0.
func SynthesizeSeries(series []float64) models.TrendSummary {
	if len(series) < 2 {
		return models.TrendSummary{Direction: "flat"}
	}
	first, last := series[0], series[len(series)-1]
	delta := last - first

	direction := "flat"
	switch {
	case delta > 0:
		direction = "rising"
	case delta < 0:
		direction = "falling"
	}

	changePercent := 0
	if first != 0 {
		changePercent = int(math.Round(delta / first * 100))
	}

	return models.TrendSummary{
		Direction:     direction,
		Change:        math.Abs(delta),
		ChangePercent: changePercent,
	}
}

// TrendEngine buckets a window snapshot into equal-width time buckets and
// synthesizes one trend per tracked dimension.
type TrendEngine struct{}

// NewTrendEngine returns a trend synthesizer.
func NewTrendEngine() *TrendEngine {
	return &TrendEngine{}
}

// Synthesize builds the four dimension series and reduces each one.
// Dimensions: volume is the transport-request count per bucket, performance
// the on-time delivery rate, cost the average carrier buy rate, quality the
// inverse damage rate.
func (e *TrendEngine) Synthesize(snap *models.WindowSnapshot, buckets int) models.TrendSet {
	if buckets < 2 {
		buckets = 2
	}

	volume := make([]float64, buckets)
	performance := make([]float64, buckets)
	cost := make([]float64, buckets)
	quality := make([]float64, buckets)

	shipmentBuckets := make([][]models.ShipmentRecord, buckets)
	orderBuckets := make([][]models.OrderRecord, buckets)

	for _, r := range snap.Requests {
		if i, ok := bucketIndex(r.CreatedAt, snap.From, snap.To, buckets); ok {
			volume[i]++
		}
	}
	for _, s := range snap.Shipments {
		if i, ok := bucketIndex(s.CreatedAt, snap.From, snap.To, buckets); ok {
			shipmentBuckets[i] = append(shipmentBuckets[i], s)
		}
	}
	for _, o := range snap.Orders {
		if i, ok := bucketIndex(o.CreatedAt, snap.From, snap.To, buckets); ok {
			orderBuckets[i] = append(orderBuckets[i], o)
		}
	}

	for i := 0; i < buckets; i++ {
		performance[i] = float64(OnTimeDeliveryRate(shipmentBuckets[i]))
		quality[i] = float64(100 - DamageRate(shipmentBuckets[i]))
		if n := len(orderBuckets[i]); n > 0 {
			sum := 0.0
			for _, o := range orderBuckets[i] {
				sum += o.FinalPrice
			}
			cost[i] = round2(sum / float64(n))
		}
	}

	return models.TrendSet{
		Volume:      SynthesizeSeries(volume),
		Performance: SynthesizeSeries(performance),
		Cost:        SynthesizeSeries(cost),
		Quality:     SynthesizeSeries(quality),
	}
}

// bucketIndex maps a timestamp into one of n equal-width buckets spanning
// [from, to]. Timestamps outside the window are dropped.
func bucketIndex(ts, from, to time.Time, n int) (int, bool) {
	span := to.Sub(from)
	if span <= 0 || ts.Before(from) || ts.After(to) {
		return 0, false
	}
	i := int(float64(n) * float64(ts.Sub(from)) / float64(span))
	if i >= n {
		i = n - 1
	}
	return i, true
}
