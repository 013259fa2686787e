package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/config"
)

func newRateContext(t *testing.T, userID interface{}) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/messages")
	if userID != nil {
		c.Set("user_id", userID)
	}
	return c
}

func TestRateKeyStrategies(t *testing.T) {
	seen := map[string]string{}
	for _, strategy := range []string{"ip", "user", "route", "ip_user", "ip_user_route"} {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}
		key := rateKey(cfg, newRateContext(t, nil))
		if !strings.HasPrefix(key, "rl:") {
			t.Fatalf("strategy %q: key %q does not carry the prefix", strategy, key)
		}
		if prev, dup := seen[key]; dup {
			t.Fatalf("strategies %q and %q produced the same key %q", prev, strategy, key)
		}
		seen[key] = strategy
	}
}

func TestRateKeySeparatesClients(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_user_route"}

	anon := rateKey(cfg, newRateContext(t, nil))
	if !strings.Contains(anon, ":user:anon:") {
		t.Fatalf("anonymous key = %q, want an anon user part", anon)
	}

	alice := rateKey(cfg, newRateContext(t, uint64(7)))
	if !strings.Contains(alice, ":user:7:") {
		t.Fatalf("authenticated key = %q, want the user id", alice)
	}
	if alice == anon {
		t.Fatalf("authenticated and anonymous clients share bucket %q", alice)
	}

	// A zero id means the auth middleware never ran; treat it as anonymous.
	if key := rateKey(cfg, newRateContext(t, uint64(0))); key != anon {
		t.Fatalf("zero user id keyed as %q, want %q", key, anon)
	}
}

func TestTokenBucketDisabledPassesThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "through")
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("disabled limiter blocked the request")
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "" {
		t.Fatalf("disabled limiter set X-RateLimit-Limit = %q", got)
	}
}

func TestAsInt64(t *testing.T) {
	for _, tc := range []struct {
		in   interface{}
		want int64
	}{
		{int64(5), 5},
		{int(3), 3},
		{float64(2), 2},
		{"42", 42},
		{"nope", 0},
		{nil, 0},
	} {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
