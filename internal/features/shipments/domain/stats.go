package domain

import "math"

// revenueShare is the illustrative platform cut applied to declared values.
const revenueShare = 0.10

// DashboardStats holds the aggregate metrics shown on the admin dashboard.
type DashboardStats struct {
	TotalShipments    int     `json:"total_shipments"`
	LiveCount         int     `json:"live_count"`
	ExceptionCount    int     `json:"exception_count"`
	OnTimePerformance int     `json:"on_time_performance"`
	Revenue           float64 `json:"revenue"`
}

// ComputeStats aggregates the full shipment collection into dashboard metrics.
// It is a plain O(n) scan; shipment volume is small enough that no incremental
// maintenance is needed.
func ComputeStats(shipments []Shipment) DashboardStats {
	stats := DashboardStats{TotalShipments: len(shipments)}

	for i := range shipments {
		s := &shipments[i]
		switch Classify(s.Status) {
		case ClassificationLive:
			stats.LiveCount++
		case ClassificationException:
			stats.ExceptionCount++
		}
		stats.Revenue += s.DeclaredValue * revenueShare
	}

	stats.OnTimePerformance = ComputeOnTimePerformance(shipments)
	return stats
}

// ComputeOnTimePerformance returns the percentage, rounded to the nearest
// integer, of completed shipments delivered on or before their estimate.
// A shipment counts as completed when it has a delivered timestamp or its
// status is Delivered. An empty denominator yields 0, not an error.
func ComputeOnTimePerformance(shipments []Shipment) int {
	var completed, onTime int

	for i := range shipments {
		s := &shipments[i]
		if s.DeliveredAt == nil && s.Status != StatusDelivered {
			continue
		}
		completed++
		if s.DeliveredAt != nil && !s.DeliveredAt.After(s.EstimatedDelivery) {
			onTime++
		}
	}

	if completed == 0 {
		return 0
	}
	return int(math.Round(float64(onTime) / float64(completed) * 100))
}
