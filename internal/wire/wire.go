// internal/wire/wire.go
package wire

import (
	"nocturne/internal/data/repository"
	"nocturne/internal/usecase"
	"nocturne/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired dependency graph.
type App struct {
	Service *usecase.Service
	Repo    *repository.Repository
}

// Wiring initializes all services over the seeded repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)

	return &App{
		Service: service,
		Repo:    repo,
	}
}
