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

func newLimitedRouter(t *testing.T, limiter *RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func attempt(router *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":54321"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiterWithConfig(client, 3, time.Minute)
	router := newLimitedRouter(t, limiter)

	for i := 1; i <= 3; i++ {
		if code := attempt(router, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i, code)
		}
	}
	if code := attempt(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("attempt 4: status = %d, want 429", code)
	}
}

func TestRateLimiter_PerClientWindows(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	router := newLimitedRouter(t, limiter)

	if code := attempt(router, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first client blocked: %d", code)
	}
	if code := attempt(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("first client not limited: %d", code)
	}
	// A different address gets its own window.
	if code := attempt(router, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("second client blocked: %d", code)
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	router := newLimitedRouter(t, limiter)

	attempt(router, "10.0.0.1")
	if code := attempt(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("not limited: %d", code)
	}

	mr.FastForward(time.Minute + time.Second)

	if code := attempt(router, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("still limited after the window passed: %d", code)
	}
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	router := newLimitedRouter(t, limiter)

	mr.Close()

	for i := 0; i < 3; i++ {
		if code := attempt(router, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request blocked while limiter store is down: %d", code)
		}
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	router := newLimitedRouter(t, limiter)

	attempt(router, "10.0.0.1")
	if code := attempt(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("not limited: %d", code)
	}

	if err := limiter.Reset(context.Background()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if code := attempt(router, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("still limited after reset: %d", code)
	}
}
