package repository

import (
	"nocturne/internal/data/entity"

	"go.uber.org/zap"
)

type Repository struct {
	Venue       VenueRepository
	Table       TableRepository
	Bottle      BottleRepository
	User        UserRepository
	Reservation ReservationRepository
}

// NewRepository wires all registries over one seeded data set. State
// lives in the returned object, never in package globals.
func NewRepository(venues []entity.Venue, tables []entity.Table, menus map[string][]entity.Bottle, log *zap.Logger) *Repository {
	return &Repository{
		Venue:       NewVenueRepository(venues, log),
		Table:       NewTableRepository(venues, tables, log),
		Bottle:      NewBottleRepository(menus, log),
		User:        NewUserRepository(log),
		Reservation: NewReservationRepository(log),
	}
}
