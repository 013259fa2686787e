package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/sepehrda/message-wall/internal/config"
)

// recordingWriter tees the response into a buffer while forwarding it to the
// client, so a successful body can be stored after the handler runs. Once the
// buffer passes the limit recording stops; an oversized response is simply
// not cached.
type recordingWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
	tooBig bool
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	if !w.tooBig {
		if w.limit > 0 && w.buf.Len()+len(b) > w.limit {
			w.tooBig = true
			w.buf.Reset()
		} else {
			w.buf.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// cachedResponse is the stored envelope. Body round-trips through base64 via
// encoding/json's []byte handling.
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// cacheKey hashes the configured request attributes under the prefix, keeping
// Redis keys short regardless of query string length.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	parts := []string{}
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		parts = append(parts, "route", c.Path())
	case "method_route":
		parts = append(parts, "method", r.Method, "route", c.Path())
	case "method_route_query":
		parts = append(parts, "method", r.Method, "route", c.Path(), "q", r.URL.RawQuery)
	default: // "route_query"
		parts = append(parts, "route", c.Path(), "q", r.URL.RawQuery)
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// NewRedisCache returns a middleware serving successful responses straight
// from Redis. Headers are replayed along with the body so cached and fresh
// responses are indistinguishable apart from the X-Cache marker. Only
// configured methods are considered and only 200 responses are stored.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passThrough
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			key := cacheKey(cfg, c)
			if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				var stored cachedResponse
				if json.Unmarshal(raw, &stored) == nil && stored.Status != 0 {
					for k, vals := range stored.Header {
						if strings.EqualFold(k, "Content-Length") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(stored.Status)
					if len(stored.Body) > 0 {
						_, _ = c.Response().Write(stored.Body)
					}
					return nil
				}
			}

			rec := &recordingWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if rec.status == http.StatusOK && !rec.tooBig {
				header := make(http.Header, len(c.Response().Header()))
				for k, vals := range c.Response().Header() {
					header[k] = append([]string(nil), vals...)
				}
				payload, err := json.Marshal(cachedResponse{
					Status: rec.status,
					Header: header,
					Body:   rec.buf.Bytes(),
				})
				if err == nil {
					// The request context may already be done; storing the
					// entry uses its own context.
					_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
				}
			}
			return nil
		}
	}
}
