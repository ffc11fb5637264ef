package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	cacheHeader       = "X-Cache"
	cacheWriteTimeout = 2 * time.Second
	maxCachedBody     = 1 << 20
)

// captureWriter copies the body while forwarding it to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.buf.Len() <= maxCachedBody {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	if w.buf.Len() <= maxCachedBody {
		w.buf.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

// CacheKey hashes path and query under prefix.
func CacheKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// ResponseCache serves GET responses from Redis and stores successful ones
// for ttl. A nil client turns it into a no-op.
func ResponseCache(rdb *redis.Client, prefix string, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := CacheKey(prefix, c.Request)

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header(cacheHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		} else if err != redis.Nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("cache read failed")
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header(cacheHeader, "MISS")

		c.Next()

		if cw.Status() != http.StatusOK || cw.buf.Len() > maxCachedBody {
			return
		}
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
		defer cancel()
		if err := rdb.Set(wctx, key, cw.buf.Bytes(), ttl).Err(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("cache write failed")
		}
	}
}

// InvalidateCache drops every cached response under prefix after a write
// succeeds. A nil client turns it into a no-op.
func InvalidateCache(rdb *redis.Client, prefix string) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), cacheWriteTimeout)
		defer cancel()

		var keys []string
		iter := rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("cache scan failed")
			return
		}
		if len(keys) == 0 {
			return
		}
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("cache invalidation failed")
		}
	}
}
