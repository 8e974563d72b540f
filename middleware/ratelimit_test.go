package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hsmcare/appointment-api/config"
)

func TestRateLimiter_WithoutRedis(t *testing.T) {
	// Ensure no Redis client is available
	config.SetRedisClientForTesting(nil)
	defer config.SetRedisClientForTesting(nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(RateLimiter(RateLimitConfig{
		Limit:  5,
		Window: 15 * time.Minute,
	}))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	// Without Redis, all requests should be allowed
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.1:1234"
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: expected status 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiter_DefaultConfig(t *testing.T) {
	config.SetRedisClientForTesting(nil)
	defer config.SetRedisClientForTesting(nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Empty config falls back to the defaults
	r.Use(RateLimiter(RateLimitConfig{}))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestResetRateLimit_WithoutRedis(t *testing.T) {
	config.SetRedisClientForTesting(nil)
	defer config.SetRedisClientForTesting(nil)

	if err := ResetRateLimit("192.168.1.1", "/login"); err == nil {
		t.Fatal("expected error when redis is unavailable")
	}
}
