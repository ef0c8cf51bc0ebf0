package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), server
}

func limitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine, ip string) int {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	request.RemoteAddr = ip + ":12345"
	router.ServeHTTP(recorder, request)
	return recorder.Code
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	router := limitedRouter(limiter)

	for i := 0; i < 3; i++ {
		if code := hit(router, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
		}
	}

	if code := hit(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after the limit, got %d", code)
	}
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	router := limitedRouter(limiter)

	if code := hit(router, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	if code := hit(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for the exhausted client, got %d", code)
	}

	if code := hit(router, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("expected 200 for a different client, got %d", code)
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	limiter, server := newTestLimiter(t, 1, time.Minute)
	router := limitedRouter(limiter)

	hit(router, "10.0.0.1")
	if code := hit(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	server.FastForward(time.Minute + time.Second)

	if code := hit(router, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("expected 200 after the window expired, got %d", code)
	}
}

func TestRateLimiter_AllowsWhenRedisIsDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	server.Close()

	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	router := limitedRouter(limiter)

	for i := 0; i < 3; i++ {
		if code := hit(router, "10.0.0.1"); code != http.StatusOK {
			t.Errorf("attempt %d: expected requests to pass without Redis, got %d", i+1, code)
		}
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	router := limitedRouter(limiter)

	hit(router, "10.0.0.1")
	if code := hit(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	if err := limiter.Reset(context.Background()); err != nil {
		t.Fatalf("failed to reset: %v", err)
	}

	if code := hit(router, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("expected 200 after reset, got %d", code)
	}
}
