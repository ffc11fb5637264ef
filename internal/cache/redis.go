package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// KeyPrefix namespaces every cached directory response.
const KeyPrefix = "fyyur:directory"

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient returns nil when addr is empty or the server does not answer
// a ping, so callers run without a cache.
func NewRedisClient(opts Options) *redis.Client {
	if opts.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", opts.Addr).Msg("redis unavailable, response cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}
