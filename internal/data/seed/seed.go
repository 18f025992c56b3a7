// Package seed generates the demo data set: the club catalog, the
// bottle menus and the per-club floor layout. Initial table statuses
// come from an injectable StatusFn so demos can be randomized while
// tests stay deterministic.
package seed

import (
	"fmt"
	"math"
	"math/rand"

	"nocturne/internal/data/entity"
)

// StatusFn assigns the initial status for the table at the given zone
// and index within that zone.
type StatusFn func(zone entity.Zone, index int) entity.TableStatus

// AllAvailable leaves every non-DJ table available. Used in tests.
func AllAvailable(zone entity.Zone, index int) entity.TableStatus {
	return entity.TableStatusAvailable
}

// RandomStatus reproduces the prototype's opening-night mix: roughly
// 30% of dance-floor tables already occupied and half the VIP lounge
// pre-reserved. Seeded, so a fixed seed yields a fixed floor.
func RandomStatus(seed int64) StatusFn {
	rng := rand.New(rand.NewSource(seed))
	return func(zone entity.Zone, index int) entity.TableStatus {
		switch zone {
		case entity.ZoneDanceFloor:
			if rng.Float64() > 0.7 {
				return entity.TableStatusOccupied
			}
		case entity.ZoneVIPLounge:
			if rng.Float64() > 0.5 {
				return entity.TableStatusReserved
			}
		}
		return entity.TableStatusAvailable
	}
}

var events = []entity.Event{
	{ID: "e1", Title: "Neon Nights", Date: "Tonight", DJ: "DJ Solomun", Tags: []string{"Deep House", "Techno"}},
	{ID: "e2", Title: "Gold Rush", Date: "Tomorrow", DJ: "Black Coffee", Tags: []string{"Afro House"}},
	{ID: "e3", Title: "Retro Future", Date: "Fri, 15 Oct", DJ: "Disclosure", Tags: []string{"House", "Garage"}},
}

// Venues returns the club catalog.
func Venues() []entity.Venue {
	return []entity.Venue{
		{
			ID:          "eclipse",
			Name:        "ECLIPSE",
			Description: "Underground Techno Cathedral",
			MusicGenre:  "Techno",
			Capacity:    2000,
			Kind:        entity.VenueKindClub,
			PriceRange:  "€€€€",
			Currency:    "EUR",
			Manager:     entity.Manager{ID: "m1", Name: "Sven", WhatsApp: "123456", ResponseRate: "Fast", IsOnline: true},
			Events:      events,
			Lat:         40.7128,
			Lng:         -74.0060,
		},
		{
			ID:          "velvet",
			Name:        "VELVET",
			Description: "Rooftop Luxury Lounge",
			MusicGenre:  "R&B / Hip Hop",
			Capacity:    1500,
			Kind:        entity.VenueKindDaybedLounge,
			PriceRange:  "€€€€€",
			Currency:    "EUR",
			Manager:     entity.Manager{ID: "m2", Name: "Marcus", WhatsApp: "123456", ResponseRate: "Instant", IsOnline: true},
			Events:      events,
			Lat:         34.0522,
			Lng:         -118.2437,
		},
		{
			ID:          "void",
			Name:        "VOID",
			Description: "Industrial Warehouse Rave",
			MusicGenre:  "Hard Techno",
			Capacity:    3000,
			Kind:        entity.VenueKindClub,
			PriceRange:  "€€",
			Currency:    "EUR",
			Manager:     entity.Manager{ID: "m3", Name: "Klaus", WhatsApp: "123456", ResponseRate: "Slow", IsOnline: false},
			Events:      events,
			Lat:         52.5200,
			Lng:         13.4050,
		},
	}
}

// Menus returns the bottle menu per venue. Prices are minor units.
func Menus(venues []entity.Venue) map[string][]entity.Bottle {
	menu := []entity.Bottle{
		{ID: "b1", Name: "Grey Goose 0.7L", Category: entity.CategoryVodka, Price: 350_00},
		{ID: "b2", Name: "Belvedere 1.75L", Category: entity.CategoryVodka, Price: 750_00},
		{ID: "b3", Name: "Dom Pérignon", Category: entity.CategoryChampagne, Price: 600_00},
		{ID: "b4", Name: "Ace of Spades", Category: entity.CategoryChampagne, Price: 900_00},
		{ID: "b5", Name: "Clase Azul Reposado", Category: entity.CategoryTequila, Price: 550_00},
		{ID: "b6", Name: "Don Julio 1942", Category: entity.CategoryTequila, Price: 800_00},
	}

	menus := make(map[string][]entity.Bottle, len(venues))
	for _, v := range venues {
		m := make([]entity.Bottle, len(menu))
		copy(m, menu)
		menus[v.ID] = m
	}
	return menus
}

// Tables lays out the floor for every venue: one locked DJ booth,
// eight dance-floor tables on a ring and six VIP tables along the
// walls. Statuses come from statusFn.
func Tables(venues []entity.Venue, statusFn StatusFn) []entity.Table {
	var tables []entity.Table

	for _, club := range venues {
		tables = append(tables, entity.Table{
			ID:      fmt.Sprintf("%s-dj", club.ID),
			VenueID: club.ID,
			Label:   "DJ",
			Zone:    entity.ZoneDJDeck,
			Position: entity.Position{
				X: 400, Y: 50,
				Shape: entity.ShapeRect, Width: 140, Height: 40,
			},
			Status:   entity.TableStatusLocked,
			MinSpend: 0,
			Capacity: 0,
		})

		for i := 0; i < 8; i++ {
			angle := float64(i) / 8 * 2 * math.Pi
			tables = append(tables, entity.Table{
				ID:      fmt.Sprintf("%s-df-%d", club.ID, i),
				VenueID: club.ID,
				Label:   fmt.Sprintf("DF%d", i+1),
				Zone:    entity.ZoneDanceFloor,
				Position: entity.Position{
					X:     400 + math.Cos(angle)*160,
					Y:     300 + math.Sin(angle)*130,
					Shape: entity.ShapeCircle,
				},
				Status:   statusFn(entity.ZoneDanceFloor, i),
				MinSpend: 1000_00,
				Capacity: 6,
			})
		}

		for i := 0; i < 6; i++ {
			x := 80.0
			if i >= 3 {
				x = 720
			}
			tables = append(tables, entity.Table{
				ID:      fmt.Sprintf("%s-vip-%d", club.ID, i),
				VenueID: club.ID,
				Label:   fmt.Sprintf("VIP%d", i+1),
				Zone:    entity.ZoneVIPLounge,
				Position: entity.Position{
					X: x, Y: 150 + float64(i%3)*120,
					Shape: entity.ShapeRect, Width: 100, Height: 80,
				},
				Status:   statusFn(entity.ZoneVIPLounge, i),
				MinSpend: 2500_00,
				Capacity: 10,
			})
		}
	}

	return tables
}
