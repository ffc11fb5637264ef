package server

import (
	"net/http"
	"time"

	"fyyur/internal/cache"
	"fyyur/internal/events"
	"fyyur/internal/middleware"
	"fyyur/internal/modules/artist"
	"fyyur/internal/modules/directory"
	"fyyur/internal/modules/show"
	"fyyur/internal/modules/venue"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Deps struct {
	DB          *gorm.DB
	Logger      zerolog.Logger
	Redis       *redis.Client // nil disables the response cache
	CacheTTL    time.Duration
	Publisher   events.Publisher
	CORSOrigins []string
}

// NewRouter wires every module onto /api/v1.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(d.Logger),
		middleware.Recovery(),
		middleware.CORS(d.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	directoryHandler := directory.NewHandler(directory.NewService(d.DB))
	venueHandler := venue.NewHandler(venue.NewService(d.DB))
	artistHandler := artist.NewHandler(artist.NewService(d.DB))
	showHandler := show.NewHandler(show.NewService(d.DB, d.Publisher))

	readCache := middleware.ResponseCache(d.Redis, cache.KeyPrefix, d.CacheTTL)
	invalidate := middleware.InvalidateCache(d.Redis, cache.KeyPrefix)

	v1 := r.Group("/api/v1")
	{
		directoryHandler.RegisterRoutes(v1, readCache)
		venueHandler.RegisterRoutes(v1, invalidate)
		artistHandler.RegisterRoutes(v1, invalidate)
		showHandler.RegisterRoutes(v1, invalidate)
	}

	return r
}
