package main

import (
	"context"
	"os"

	"fyyur/internal/config"
	"fyyur/internal/database"
	"fyyur/internal/pkg/logging"
	"fyyur/internal/seed"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stdout})
	logging.SetGlobal(logger)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	log.Info().Msg("running AutoMigrate")
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	ctx := logger.WithContext(context.Background())
	if _, err := seed.Run(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}
