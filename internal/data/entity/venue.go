package entity

type VenueKind string

const (
	// VenueKindClub uses the standard table floor plan.
	VenueKindClub VenueKind = "club"
	// VenueKindDaybedLounge uses beds instead of tables; same occupancy
	// lifecycle, different display labels (see TableStatus.DisplayLabel).
	VenueKindDaybedLounge VenueKind = "daybed_lounge"
)

// Manager is the VIP contact attached to a venue.
type Manager struct {
	ID           string
	Name         string
	WhatsApp     string
	ResponseRate string
	IsOnline     bool
}

// Event is a scheduled night at a venue.
type Event struct {
	ID    string
	Title string
	Date  string
	DJ    string
	Tags  []string
}

// Venue is a club or lounge hosting tables and bottle service.
// Immutable after load.
type Venue struct {
	ID          string
	Name        string
	Description string
	MusicGenre  string
	Capacity    int
	Kind        VenueKind
	PriceRange  string
	Currency    string // ISO 4217, single currency per venue
	Manager     Manager
	Events      []Event
	Lat         float64
	Lng         float64
}
