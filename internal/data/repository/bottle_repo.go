package repository

import (
	"context"
	"fmt"

	"nocturne/internal/data/entity"

	"go.uber.org/zap"
)

type BottleRepository interface {
	FindByVenue(ctx context.Context, venueID string) ([]entity.Bottle, error)
	FindByID(ctx context.Context, bottleID string) (*entity.Bottle, error)
}

type bottleRepository struct {
	menus  map[string][]entity.Bottle // venue id -> menu
	bottle map[string]entity.Bottle
	log    *zap.Logger
}

func NewBottleRepository(menus map[string][]entity.Bottle, log *zap.Logger) BottleRepository {
	bottle := make(map[string]entity.Bottle)
	for _, menu := range menus {
		for _, b := range menu {
			bottle[b.ID] = b
		}
	}
	return &bottleRepository{
		menus:  menus,
		bottle: bottle,
		log:    log.With(zap.String("repository", "bottle")),
	}
}

func (r *bottleRepository) FindByVenue(ctx context.Context, venueID string) ([]entity.Bottle, error) {
	menu, ok := r.menus[venueID]
	if !ok {
		return nil, fmt.Errorf("bottle menu for venue %s: %w", venueID, ErrNotFound)
	}
	out := make([]entity.Bottle, len(menu))
	copy(out, menu)
	return out, nil
}

func (r *bottleRepository) FindByID(ctx context.Context, bottleID string) (*entity.Bottle, error) {
	b, ok := r.bottle[bottleID]
	if !ok {
		return nil, fmt.Errorf("bottle %s: %w", bottleID, ErrNotFound)
	}
	return &b, nil
}
