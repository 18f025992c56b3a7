// main.go
package main

import (
	"log"

	"nocturne/cmd"
	"nocturne/internal/data/repository"
	"nocturne/internal/data/seed"
	"nocturne/internal/wire"
	"nocturne/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
		zap.Int64("seed", config.Seed.Value),
	)

	// Seed the night: venues, menus and a randomized opening floor
	venues := seed.Venues()
	tables := seed.Tables(venues, seed.RandomStatus(config.Seed.Value))
	menus := seed.Menus(venues)

	// Initialize all registries
	repos := repository.NewRepository(venues, tables, menus, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Run the scripted booking night
	if err := cmd.Demo(app, config, logger); err != nil {
		logger.Fatal("Demo run failed", zap.Error(err))
	}
}
