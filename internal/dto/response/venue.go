package response

import "nocturne/internal/data/entity"

type ManagerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WhatsApp     string `json:"whatsapp"`
	ResponseRate string `json:"response_rate"`
	IsOnline     bool   `json:"is_online"`
}

type EventResponse struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Date  string   `json:"date"`
	DJ    string   `json:"dj"`
	Tags  []string `json:"tags"`
}

type ClubResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MusicGenre  string           `json:"music_genre"`
	Capacity    int              `json:"capacity"`
	Kind        entity.VenueKind `json:"kind"`
	PriceRange  string           `json:"price_range"`
	Currency    string           `json:"currency"`
	Manager     ManagerResponse  `json:"manager"`
	Events      []EventResponse  `json:"events"`
}

type TableResponse struct {
	ID       string      `json:"id"`
	VenueID  string      `json:"venue_id"`
	Label    string      `json:"label"`
	Zone     entity.Zone `json:"zone"`
	Status   string      `json:"status"`
	MinSpend int64       `json:"min_spend"`
	Capacity int         `json:"capacity"`
}

type BottleResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Category entity.BottleCategory `json:"category"`
	Price    int64                 `json:"price"`
}

func ClubToResponse(v *entity.Venue) ClubResponse {
	evs := make([]EventResponse, len(v.Events))
	for i, e := range v.Events {
		evs[i] = EventResponse{ID: e.ID, Title: e.Title, Date: e.Date, DJ: e.DJ, Tags: e.Tags}
	}
	return ClubResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		MusicGenre:  v.MusicGenre,
		Capacity:    v.Capacity,
		Kind:        v.Kind,
		PriceRange:  v.PriceRange,
		Currency:    v.Currency,
		Manager: ManagerResponse{
			ID:           v.Manager.ID,
			Name:         v.Manager.Name,
			WhatsApp:     v.Manager.WhatsApp,
			ResponseRate: v.Manager.ResponseRate,
			IsOnline:     v.Manager.IsOnline,
		},
		Events: evs,
	}
}

// TableToResponse renders the status with the label set of the venue
// kind (RESERVED vs BOOKED, LOCKED vs MAINTENANCE).
func TableToResponse(t *entity.Table, kind entity.VenueKind) TableResponse {
	return TableResponse{
		ID:       t.ID,
		VenueID:  t.VenueID,
		Label:    t.Label,
		Zone:     t.Zone,
		Status:   t.Status.DisplayLabel(kind),
		MinSpend: t.MinSpend,
		Capacity: t.Capacity,
	}
}

func BottleToResponse(b *entity.Bottle) BottleResponse {
	return BottleResponse{ID: b.ID, Name: b.Name, Category: b.Category, Price: b.Price}
}
