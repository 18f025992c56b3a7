package repository

import (
	"context"
	"sync"

	"nocturne/internal/data/entity"

	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *entity.Reservation) error
	FindAll(ctx context.Context) ([]entity.Reservation, error)
	FindByVenue(ctx context.Context, venueID string) ([]entity.Reservation, error)
}

type reservationRepository struct {
	mu           sync.Mutex
	reservations []entity.Reservation
	log          *zap.Logger
}

func NewReservationRepository(log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations = append(r.reservations, *res)
	r.log.Info("Reservation recorded",
		zap.String("order_ref", res.OrderRef),
		zap.String("table_id", res.TableID),
		zap.Int64("total", res.Total),
	)
	return nil
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *reservationRepository) FindByVenue(ctx context.Context, venueID string) ([]entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.Reservation
	for _, res := range r.reservations {
		if res.VenueID == venueID {
			out = append(out, res)
		}
	}
	return out, nil
}
