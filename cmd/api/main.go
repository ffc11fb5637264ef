package main

import (
	"os"

	"fyyur/internal/cache"
	"fyyur/internal/config"
	"fyyur/internal/database"
	"fyyur/internal/events"
	"fyyur/internal/pkg/logging"
	"fyyur/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})
	logging.SetGlobal(logger)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.WithLogLevel(database.ParseLogLevel(cfg.DBLogLevel)))
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	rdb := cache.NewRedisClient(cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if rdb != nil {
		defer rdb.Close()
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		publisher = events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsQueue)
	}

	r := server.NewRouter(server.Deps{
		DB:          db,
		Logger:      logger,
		Redis:       rdb,
		CacheTTL:    cfg.CacheTTL,
		Publisher:   publisher,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	log.Info().
		Str("port", cfg.Port).
		Bool("cache", rdb != nil).
		Bool("events", cfg.EventsEnabled()).
		Msg("fyyur api listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
