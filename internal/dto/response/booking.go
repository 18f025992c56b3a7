package response

import (
	"time"

	"nocturne/internal/data/entity"
)

type CartLineResponse struct {
	BottleID string `json:"bottle_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

type ReservationResponse struct {
	ID        string             `json:"id"`
	OrderRef  string             `json:"order_ref"`
	UserID    string             `json:"user_id"`
	VenueID   string             `json:"venue_id"`
	TableID   string             `json:"table_id"`
	Lines     []CartLineResponse `json:"lines"`
	Total     int64              `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

func ReservationToResponse(r *entity.Reservation) ReservationResponse {
	lines := make([]CartLineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = CartLineResponse{
			BottleID: l.Bottle.ID,
			Name:     l.Bottle.Name,
			Price:    l.Bottle.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		}
	}
	return ReservationResponse{
		ID:        r.ID.String(),
		OrderRef:  r.OrderRef,
		UserID:    r.UserID.String(),
		VenueID:   r.VenueID,
		TableID:   r.TableID,
		Lines:     lines,
		Total:     r.Total,
		CreatedAt: r.CreatedAt,
	}
}
