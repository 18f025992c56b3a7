package usecase

import (
	"context"
	"fmt"

	"nocturne/internal/data/entity"
	"nocturne/internal/data/repository"
	"nocturne/internal/dto/response"

	"go.uber.org/zap"
)

type VenueService interface {
	ListClubs(ctx context.Context) ([]response.ClubResponse, error)
	GetClub(ctx context.Context, venueID string) (*response.ClubResponse, error)
	ListTables(ctx context.Context, venueID string) ([]response.TableResponse, error)
	ListBottles(ctx context.Context, venueID string) ([]response.BottleResponse, error)

	// WatchFloor subscribes to table updates for a venue. Observers are
	// called in subscription order with a fresh snapshot on every
	// successful status change.
	WatchFloor(ctx context.Context, venueID string, fn func([]response.TableResponse)) (*repository.Subscription, error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) ListClubs(ctx context.Context) ([]response.ClubResponse, error) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list clubs", zap.Error(err))
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	clubs := make([]response.ClubResponse, len(venues))
	for i := range venues {
		clubs[i] = response.ClubToResponse(&venues[i])
	}
	return clubs, nil
}

func (s *venueService) GetClub(ctx context.Context, venueID string) (*response.ClubResponse, error) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	club := response.ClubToResponse(venue)
	return &club, nil
}

func (s *venueService) ListTables(ctx context.Context, venueID string) ([]response.TableResponse, error) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tables, err := s.repo.Table.ListByVenue(ctx, venueID)
	if err != nil {
		s.log.Error("Failed to list tables", zap.Error(err), zap.String("venue_id", venueID))
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return tablesToResponse(tables, venue.Kind), nil
}

func (s *venueService) ListBottles(ctx context.Context, venueID string) ([]response.BottleResponse, error) {
	bottles, err := s.repo.Bottle.FindByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("list bottles: %w", err)
	}

	out := make([]response.BottleResponse, len(bottles))
	for i := range bottles {
		out[i] = response.BottleToResponse(&bottles[i])
	}
	return out, nil
}

func (s *venueService) WatchFloor(ctx context.Context, venueID string, fn func([]response.TableResponse)) (*repository.Subscription, error) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("watch floor: %w", err)
	}

	kind := venue.Kind
	sub := s.repo.Table.Subscribe(venueID, func(tables []entity.Table) {
		fn(tablesToResponse(tables, kind))
	})

	s.log.Info("Floor watcher attached", zap.String("venue_id", venueID))
	return sub, nil
}

func tablesToResponse(tables []entity.Table, kind entity.VenueKind) []response.TableResponse {
	out := make([]response.TableResponse, len(tables))
	for i := range tables {
		out[i] = response.TableToResponse(&tables[i], kind)
	}
	return out
}
