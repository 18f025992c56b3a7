package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is the committed outcome of a confirmed booking session.
// Held in memory for the running night only.
type Reservation struct {
	ID        uuid.UUID
	OrderRef  string
	UserID    uuid.UUID
	VenueID   string
	TableID   string
	Lines     []CartLine
	Total     int64
	CreatedAt time.Time
}

// BottleCount sums the quantities across all lines.
func (r Reservation) BottleCount() int {
	count := 0
	for _, line := range r.Lines {
		count += line.Quantity
	}
	return count
}

// RevenueStats is the nightly performance snapshot shown on the
// analytics dashboard.
type RevenueStats struct {
	TotalRevenue  int64
	OccupancyRate int // percent, 0-100
	BottlesSold   int
	ActiveTables  int
}
