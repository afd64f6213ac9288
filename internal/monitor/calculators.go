package monitor

import (
	"math"
	"time"

	"LogiPulse/internal/domain/models"
)

// Metric calculators. Every function is pure and returns a deterministic
// safe default (0, or an empty value) for empty input collections — never
// NaN, Inf, or a panic.

// Percent returns part/total as a whole percent, 0 when total is not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// CountShipments counts shipments in any of the given states.
func CountShipments(shipments []models.ShipmentRecord, states ...models.ShipmentStatus) int {
	n := 0
	for _, s := range shipments {
		for _, st := range states {
			if s.Status == st {
				n++
				break
			}
		}
	}
	return n
}

// ActiveShipments counts shipments currently moving.
func ActiveShipments(shipments []models.ShipmentRecord) int {
	return CountShipments(shipments, models.ShipmentPickedUp, models.ShipmentInTransit)
}

// DelayedShipments counts shipments in the exception state.
func DelayedShipments(shipments []models.ShipmentRecord) int {
	return CountShipments(shipments, models.ShipmentException)
}

// CountOrders counts orders in any of the given states.
func CountOrders(orders []models.OrderRecord, states ...models.OrderStatus) int {
	n := 0
	for _, o := range orders {
		for _, st := range states {
			if o.Status == st {
				n++
				break
			}
		}
	}
	return n
}

// OpenOrders counts orders not yet completed or cancelled.
func OpenOrders(orders []models.OrderRecord) int {
	return CountOrders(orders, models.OrderOpen, models.OrderConfirmed)
}

// CountRequests counts transport requests in any of the given states.
func CountRequests(requests []models.RequestRecord, states ...models.RequestStatus) int {
	n := 0
	for _, r := range requests {
		for _, st := range states {
			if r.Status == st {
				n++
				break
			}
		}
	}
	return n
}

// ThroughputPerHour divides count by the elapsed hours between windowStart
// and now, clamped to 0 for non-positive elapsed time.
func ThroughputPerHour(count int, windowStart, now time.Time) float64 {
	hours := now.Sub(windowStart).Hours()
	if hours <= 0 || count <= 0 {
		return 0
	}
	return round1(float64(count) / hours)
}

// OnTimeDeliveryRate is the share of terminal shipments that arrived
// without an exception, as a whole percent.
func OnTimeDeliveryRate(shipments []models.ShipmentRecord) int {
	delivered := CountShipments(shipments, models.ShipmentDelivered)
	delayed := DelayedShipments(shipments)
	return Percent(delivered, delivered+delayed)
}

// DamageRate is the share of shipments flagged damaged, as a whole percent.
func DamageRate(shipments []models.ShipmentRecord) int {
	damaged := 0
	for _, s := range shipments {
		if s.Damaged {
			damaged++
		}
	}
	return Percent(damaged, len(shipments))
}

// CustomerSatisfaction averages the 1..5 ratings of rated shipments.
func CustomerSatisfaction(shipments []models.ShipmentRecord) float64 {
	sum, n := 0, 0
	for _, s := range shipments {
		if s.Rating > 0 {
			sum += s.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round1(float64(sum) / float64(n))
}

// FirstAttemptSuccessRate is the share of delivered shipments that arrived
// undamaged, as a whole percent.
func FirstAttemptSuccessRate(shipments []models.ShipmentRecord) int {
	delivered, clean := 0, 0
	for _, s := range shipments {
		if s.Status != models.ShipmentDelivered {
			continue
		}
		delivered++
		if !s.Damaged {
			clean++
		}
	}
	return Percent(clean, delivered)
}

// AvgProcessingHours averages the age (in hours, against windowEnd) of
// completed transport requests.
func AvgProcessingHours(requests []models.RequestRecord, windowEnd time.Time) float64 {
	sum, n := 0.0, 0
	for _, r := range requests {
		if r.Status != models.RequestCompleted {
			continue
		}
		sum += windowEnd.Sub(r.CreatedAt).Hours()
		n++
	}
	if n == 0 || sum <= 0 {
		return 0
	}
	return round1(sum / float64(n))
}

// CostPerShipment divides the carrier buy total of non-cancelled orders by
// the shipment count.
func CostPerShipment(orders []models.OrderRecord, shipmentCount int) float64 {
	if shipmentCount <= 0 {
		return 0
	}
	return round2(TotalCarrierCost(orders) / float64(shipmentCount))
}

// TotalRevenue sums the billed customer prices of non-cancelled orders.
func TotalRevenue(orders []models.OrderRecord) float64 {
	sum := 0.0
	for _, o := range orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		sum += o.CustomerPrice
	}
	return round2(sum)
}

// TotalCarrierCost sums the carrier buy rates of non-cancelled orders.
func TotalCarrierCost(orders []models.OrderRecord) float64 {
	sum := 0.0
	for _, o := range orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		sum += o.FinalPrice
	}
	return round2(sum)
}

// AvgOrderValue averages the billed price of non-cancelled orders.
func AvgOrderValue(orders []models.OrderRecord) float64 {
	sum, n := 0.0, 0
	for _, o := range orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		sum += o.CustomerPrice
		n++
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

// AvgMarginPercent averages order margins as a whole percent.
func AvgMarginPercent(orders []models.OrderRecord) int {
	sum, n := 0.0, 0
	for _, o := range orders {
		if o.Status == models.OrderCancelled || o.CustomerPrice <= 0 {
			continue
		}
		sum += o.Margin()
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n) * 100))
}

// LowMarginOrders counts orders whose margin is below the floor.
func LowMarginOrders(orders []models.OrderRecord, floor float64) int {
	n := 0
	for _, o := range orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		if o.Margin() < floor {
			n++
		}
	}
	return n
}

// LowMarginShare is the low-margin order share as a whole percent.
func LowMarginShare(orders []models.OrderRecord, floor float64) int {
	total := 0
	for _, o := range orders {
		if o.Status != models.OrderCancelled {
			total++
		}
	}
	return Percent(LowMarginOrders(orders, floor), total)
}

// CostRatio is carrier cost over revenue as a whole percent, 0 when there
// is no revenue.
func CostRatio(orders []models.OrderRecord) int {
	rev := TotalRevenue(orders)
	if rev <= 0 {
		return 0
	}
	return int(math.Round(TotalCarrierCost(orders) / rev * 100))
}

// ActiveCarriers counts carriers flagged active.
func ActiveCarriers(carriers []models.CarrierRecord) int {
	n := 0
	for _, c := range carriers {
		if c.Active {
			n++
		}
	}
	return n
}

// AvgReliability averages reliability over all returned carriers.
func AvgReliability(carriers []models.CarrierRecord) float64 {
	return avgCarrierScore(carriers, func(c models.CarrierRecord) float64 { return c.Reliability })
}

// AvgOnTimeScore averages the carriers' on-time score.
func AvgOnTimeScore(carriers []models.CarrierRecord) float64 {
	return avgCarrierScore(carriers, func(c models.CarrierRecord) float64 { return c.OnTimeScore })
}

// AvgDamageScore averages the carriers' damage score.
func AvgDamageScore(carriers []models.CarrierRecord) float64 {
	return avgCarrierScore(carriers, func(c models.CarrierRecord) float64 { return c.DamageScore })
}

// AvgCostScore averages the carriers' cost score.
func AvgCostScore(carriers []models.CarrierRecord) float64 {
	return avgCarrierScore(carriers, func(c models.CarrierRecord) float64 { return c.CostScore })
}

func avgCarrierScore(carriers []models.CarrierRecord, pick func(models.CarrierRecord) float64) float64 {
	if len(carriers) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range carriers {
		sum += pick(c)
	}
	return round1(sum / float64(len(carriers)))
}

// CarrierHighlight names the best-scoring carrier of a window.
type CarrierHighlight struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Reliability float64 `json:"reliability"`
}

// TopCarrier returns the carrier with the highest reliability; ties go to
// the first carrier in input order. Returns nil for an empty input.
func TopCarrier(carriers []models.CarrierRecord) *CarrierHighlight {
	if len(carriers) == 0 {
		return nil
	}
	best := carriers[0]
	for _, c := range carriers[1:] {
		if c.Reliability > best.Reliability {
			best = c
		}
	}
	return &CarrierHighlight{ID: best.ID, Name: best.Name, Reliability: best.Reliability}
}

// CountDocuments counts compliance documents in any of the given states.
func CountDocuments(docs []models.ComplianceDocument, states ...models.DocumentStatus) int {
	n := 0
	for _, d := range docs {
		for _, st := range states {
			if d.Status == st {
				n++
				break
			}
		}
	}
	return n
}

// ApprovedRate is the approved document share as a whole percent.
func ApprovedRate(docs []models.ComplianceDocument) int {
	return Percent(CountDocuments(docs, models.DocumentApproved), len(docs))
}

// HighRiskShare is the high-risk document share as a whole percent.
func HighRiskShare(docs []models.ComplianceDocument) int {
	n := 0
	for _, d := range docs {
		if d.RiskLevel == models.RiskHigh {
			n++
		}
	}
	return Percent(n, len(docs))
}

// AvgComplianceScore averages document scores.
func AvgComplianceScore(docs []models.ComplianceDocument) float64 {
	if len(docs) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range docs {
		sum += d.Score
	}
	return round1(sum / float64(len(docs)))
}
