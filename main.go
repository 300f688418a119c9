package main

import (
	"context"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/seed"
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
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	utils.SetReleaseYearRange(config.Movie.MinReleaseYear, config.Movie.MaxYearsAhead)

	// A missing signing secret is a configuration error, not a request error
	tokens, err := utils.NewTokenIssuer(config.JWT)
	if err != nil {
		logger.Fatal("Invalid JWT configuration", zap.Error(err))
	}

	if config.Database.AutoMigrate {
		version, err := database.Migrate(database.ConnString(config.Database))
		if err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		logger.Info("Database schema is up to date", zap.Uint("version", version))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	if config.Database.Seed {
		seeder := seed.NewSeeder(db, repos, utils.NewHMACHasher(), logger)
		if err := seeder.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed database", zap.Error(err))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, db, tokens, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
