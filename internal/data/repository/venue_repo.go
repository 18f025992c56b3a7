package repository

import (
	"context"
	"fmt"

	"nocturne/internal/data/entity"

	"go.uber.org/zap"
)

type VenueRepository interface {
	FindAll(ctx context.Context) ([]entity.Venue, error)
	FindByID(ctx context.Context, venueID string) (*entity.Venue, error)
}

type venueRepository struct {
	venues []entity.Venue
	byID   map[string]int
	log    *zap.Logger
}

// NewVenueRepository holds the seeded venue catalog. Venues are
// immutable after load, so reads need no locking.
func NewVenueRepository(venues []entity.Venue, log *zap.Logger) VenueRepository {
	byID := make(map[string]int, len(venues))
	for i, v := range venues {
		byID[v.ID] = i
	}
	return &venueRepository{
		venues: venues,
		byID:   byID,
		log:    log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) FindAll(ctx context.Context) ([]entity.Venue, error) {
	out := make([]entity.Venue, len(r.venues))
	copy(out, r.venues)
	return out, nil
}

func (r *venueRepository) FindByID(ctx context.Context, venueID string) (*entity.Venue, error) {
	i, ok := r.byID[venueID]
	if !ok {
		return nil, fmt.Errorf("venue %s: %w", venueID, ErrNotFound)
	}
	copied := r.venues[i]
	return &copied, nil
}
