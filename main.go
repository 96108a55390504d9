// main.go
package main

import (
	"context"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

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
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Create tables on first run
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
