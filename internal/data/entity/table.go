package entity

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusLocked    TableStatus = "locked"
)

// DisplayLabel maps the occupancy status to the label set of the venue
// kind. Daybed lounges call a reserved bed "BOOKED" and a locked bed
// "MAINTENANCE"; the lifecycle underneath is identical.
func (s TableStatus) DisplayLabel(kind VenueKind) string {
	if kind == VenueKindDaybedLounge {
		switch s {
		case TableStatusReserved:
			return "BOOKED"
		case TableStatusLocked:
			return "MAINTENANCE"
		}
	}
	switch s {
	case TableStatusAvailable:
		return "AVAILABLE"
	case TableStatusReserved:
		return "RESERVED"
	case TableStatusOccupied:
		return "OCCUPIED"
	case TableStatusLocked:
		return "LOCKED"
	}
	return string(s)
}

// Selectable reports whether a booking flow may propose this status.
// Locked tables are excluded from the selectable set entirely.
func (s TableStatus) Selectable() bool {
	return s == TableStatusAvailable
}

type Zone string

const (
	ZoneDJDeck     Zone = "DJ_DECK"
	ZoneDanceFloor Zone = "DANCE_FLOOR"
	ZoneVIPLounge  Zone = "VIP_LOUNGE"
	ZoneTerrace    Zone = "TERRACE"
	ZoneBooth      Zone = "BOOTH"
	ZoneGeneral    Zone = "GENERAL"
)

type TableShape string

const (
	ShapeCircle TableShape = "circle"
	ShapeRect   TableShape = "rect"
)

// Position is presentation-only floor placement; no booking rule reads it.
type Position struct {
	X        float64
	Y        float64
	Rotation float64
	Shape    TableShape
	Width    float64
	Height   float64
}

// Table is a reservable floor unit (a bed in daybed lounges).
// MinSpend is in currency minor units.
type Table struct {
	ID       string
	VenueID  string
	Label    string
	Zone     Zone
	Position Position
	Status   TableStatus
	MinSpend int64
	Capacity int
}
