package monitor

import "LogiPulse/internal/domain/models"

// The low-margin floor used by financial KPIs and the margin alert rule.
const lowMarginFloor = 0.1

// categories is the schema registry. Field names are part of the API
// contract; renaming one breaks downstream dashboards.
var categories = []CategorySpec{
	{
		Name: "overview",
		Sections: []SectionSpec{
			{Name: "operational", Metrics: []MetricSpec{
				{"activeShipments", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ActiveShipments(s.Shipments)
				}},
				{"openOrders", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return OpenOrders(s.Orders)
				}},
				{"pendingRequests", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountRequests(s.Requests, models.RequestPending)
				}},
				{"throughputPerHour", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ThroughputPerHour(len(s.Shipments), s.From, s.To)
				}},
			}},
			{Name: "performance", Metrics: []MetricSpec{
				{"onTimeDeliveryRate", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return OnTimeDeliveryRate(s.Shipments)
				}},
				{"avgProcessingHours", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgProcessingHours(s.Requests, s.To)
				}},
				{"systemUptime", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(95, 100)
				}},
			}},
			{Name: "quality", Metrics: []MetricSpec{
				{"damageRate", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return DamageRate(s.Shipments)
				}},
				{"customerSatisfaction", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CustomerSatisfaction(s.Shipments)
				}},
				{"firstAttemptSuccessRate", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return FirstAttemptSuccessRate(s.Shipments)
				}},
			}},
			{Name: "efficiency", Metrics: []MetricSpec{
				{"capacityUtilization", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(60, 95)
				}},
				{"costPerShipment", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CostPerShipment(s.Orders, len(s.Shipments))
				}},
				{"automationRate", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.PercentBetween(40, 80)
				}},
			}},
		},
	},
	{
		Name: "carriers",
		Sections: []SectionSpec{
			{Name: "fleet", Metrics: []MetricSpec{
				{"totalCarriers", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return len(s.Carriers)
				}},
				{"activeCarriers", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ActiveCarriers(s.Carriers)
				}},
				{"utilizationRate", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(55, 90)
				}},
			}},
			{Name: "performance", Metrics: []MetricSpec{
				{"avgReliability", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgReliability(s.Carriers)
				}},
				{"avgOnTimeScore", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgOnTimeScore(s.Carriers)
				}},
				{"avgDamageScore", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgDamageScore(s.Carriers)
				}},
				{"topPerformer", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return TopCarrier(s.Carriers)
				}},
			}},
			{Name: "cost", Metrics: []MetricSpec{
				{"avgCostScore", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgCostScore(s.Carriers)
				}},
				{"totalCarrierCost", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return TotalCarrierCost(s.Orders)
				}},
				{"costPerShipment", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CostPerShipment(s.Orders, len(s.Shipments))
				}},
			}},
		},
	},
	{
		Name: "routes",
		Sections: []SectionSpec{
			{Name: "planning", Metrics: []MetricSpec{
				{"plannedRoutes", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountRequests(s.Requests, models.RequestAssigned)
				}},
				{"completedRoutes", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountRequests(s.Requests, models.RequestCompleted)
				}},
				{"avgStopsPerRoute", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(4, 18)
				}},
			}},
			{Name: "performance", Metrics: []MetricSpec{
				{"onTimeArrivalRate", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return OnTimeDeliveryRate(s.Shipments)
				}},
				{"avgTransitHours", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgProcessingHours(s.Requests, s.To)
				}},
			}},
			{Name: "optimization", Metrics: []MetricSpec{
				{"routeEfficiency", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(70, 95)
				}},
				{"emptyMileageRate", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(5, 25)
				}},
				{"consolidationRate", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(30, 70)
				}},
			}},
		},
	},
	{
		Name: "operations",
		Sections: []SectionSpec{
			{Name: "throughput", Metrics: []MetricSpec{
				{"shipmentsPerHour", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ThroughputPerHour(len(s.Shipments), s.From, s.To)
				}},
				{"requestsPerHour", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ThroughputPerHour(len(s.Requests), s.From, s.To)
				}},
				{"ordersPerHour", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ThroughputPerHour(len(s.Orders), s.From, s.To)
				}},
			}},
			{Name: "backlog", Metrics: []MetricSpec{
				{"pendingRequests", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountRequests(s.Requests, models.RequestPending)
				}},
				{"openOrders", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return OpenOrders(s.Orders)
				}},
				{"delayedShipments", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return DelayedShipments(s.Shipments)
				}},
			}},
			{Name: "workforce", Metrics: []MetricSpec{
				{"staffUtilization", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(60, 95)
				}},
				{"overtimeRate", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(0, 15)
				}},
				{"productivityIndex", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(80, 120)
				}},
			}},
		},
	},
	{
		Name: "financial",
		Sections: []SectionSpec{
			{Name: "revenue", Metrics: []MetricSpec{
				{"totalRevenue", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return TotalRevenue(s.Orders)
				}},
				{"avgOrderValue", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgOrderValue(s.Orders)
				}},
				{"completedOrders", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountOrders(s.Orders, models.OrderCompleted)
				}},
			}},
			{Name: "margin", Metrics: []MetricSpec{
				{"avgMarginPercent", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgMarginPercent(s.Orders)
				}},
				{"lowMarginOrders", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return LowMarginOrders(s.Orders, lowMarginFloor)
				}},
				{"lowMarginShare", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return LowMarginShare(s.Orders, lowMarginFloor)
				}},
			}},
			{Name: "cost", Metrics: []MetricSpec{
				{"totalCarrierCost", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return TotalCarrierCost(s.Orders)
				}},
				{"costRatio", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CostRatio(s.Orders)
				}},
				{"costPerShipment", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CostPerShipment(s.Orders, len(s.Shipments))
				}},
			}},
		},
	},
	{
		Name: "compliance",
		Sections: []SectionSpec{
			{Name: "documents", Metrics: []MetricSpec{
				{"totalDocuments", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return len(s.Documents)
				}},
				{"approvedRate", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return ApprovedRate(s.Documents)
				}},
				{"expiredDocuments", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountDocuments(s.Documents, models.DocumentExpired)
				}},
				{"pendingReview", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountDocuments(s.Documents, models.DocumentPending)
				}},
			}},
			{Name: "risk", Metrics: []MetricSpec{
				{"highRiskShare", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return HighRiskShare(s.Documents)
				}},
				{"avgComplianceScore", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return AvgComplianceScore(s.Documents)
				}},
			}},
			{Name: "audit", Metrics: []MetricSpec{
				{"auditReadiness", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.PercentBetween(70, 100)
				}},
				{"openFindings", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return CountDocuments(s.Documents, models.DocumentPending) + CountDocuments(s.Documents, models.DocumentExpired)
				}},
			}},
		},
	},
	{
		Name: "sustainability",
		Sections: []SectionSpec{
			{Name: "emissions", Metrics: []MetricSpec{
				{"co2PerShipmentKg", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(8, 45)
				}},
				{"totalCo2Tons", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(10, 120)
				}},
			}},
			{Name: "efficiency", Metrics: []MetricSpec{
				{"loadFactor", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(55, 90)
				}},
				{"emptyRunsRate", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.Between(5, 25)
				}},
				{"greenCarrierShare", func(s *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return Percent(ActiveCarriers(s.Carriers), len(s.Carriers))
				}},
			}},
			{Name: "targets", Metrics: []MetricSpec{
				{"reductionTargetPercent", func(_ *models.WindowSnapshot, _ *PlaceholderEstimator) any {
					return 30
				}},
				{"targetProgress", func(_ *models.WindowSnapshot, e *PlaceholderEstimator) any {
					return e.PercentBetween(20, 80)
				}},
			}},
		},
	},
}
