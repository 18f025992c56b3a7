package usecase

import (
	"context"
	"fmt"

	"nocturne/internal/data/entity"
	"nocturne/internal/data/repository"
	"nocturne/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService interface {
	// NightlyStats aggregates the live registry and the confirmed
	// reservations into the dashboard numbers. Admin-facing, read-only.
	NightlyStats(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) NightlyStats(ctx context.Context) (*response.StatsResponse, error) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("nightly stats: %w", err)
	}

	var bookable, taken, active int
	for _, v := range venues {
		tables, err := s.repo.Table.ListByVenue(ctx, v.ID)
		if err != nil {
			s.log.Error("Failed to list tables for stats", zap.Error(err), zap.String("venue_id", v.ID))
			return nil, fmt.Errorf("nightly stats: %w", err)
		}
		for _, t := range tables {
			if t.Status == entity.TableStatusLocked {
				continue
			}
			bookable++
			switch t.Status {
			case entity.TableStatusReserved, entity.TableStatusOccupied:
				taken++
				active++
			}
		}
	}

	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("nightly stats: %w", err)
	}

	stats := entity.RevenueStats{ActiveTables: active}
	for _, r := range reservations {
		stats.TotalRevenue += r.Total
		stats.BottlesSold += r.BottleCount()
	}
	if bookable > 0 {
		stats.OccupancyRate = taken * 100 / bookable
	}

	s.log.Info("Nightly stats computed",
		zap.Int64("total_revenue", stats.TotalRevenue),
		zap.Int("occupancy_rate", stats.OccupancyRate),
		zap.Int("bottles_sold", stats.BottlesSold),
		zap.Int("active_tables", stats.ActiveTables),
	)

	resp := response.StatsToResponse(&stats)
	return &resp, nil
}
