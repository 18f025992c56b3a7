package response

import "nocturne/internal/data/entity"

type StatsResponse struct {
	TotalRevenue  int64 `json:"total_revenue"`
	OccupancyRate int   `json:"occupancy_rate"`
	BottlesSold   int   `json:"bottles_sold"`
	ActiveTables  int   `json:"active_tables"`
}

func StatsToResponse(s *entity.RevenueStats) StatsResponse {
	return StatsResponse{
		TotalRevenue:  s.TotalRevenue,
		OccupancyRate: s.OccupancyRate,
		BottlesSold:   s.BottlesSold,
		ActiveTables:  s.ActiveTables,
	}
}
