package usecase

import (
	"nocturne/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Venue   VenueService
	User    UserService
	Booking BookingService
	Stats   StatsService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Venue:   NewVenueService(repo, log),
		User:    NewUserService(repo.User, log),
		Booking: NewBookingService(repo, log),
		Stats:   NewStatsService(repo, log),
	}
}
