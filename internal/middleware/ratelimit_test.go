// SPDX-License-Identifier: MIT
package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedRequest(middleware gin.HandlerFunc, path, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", path, nil)
	c.Request.RemoteAddr = remoteAddr
	middleware(c)
	return w
}

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, 5)
	w := limitedRequest(RateLimitMiddleware(limiter, "/api/"), "/api/palettes", "10.0.0.1:1234")

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if w.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("Expected X-RateLimit-Remaining: 4, got %s", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A near-zero refill rate keeps the bucket empty for the test
	limiter := NewRateLimiter(0.001, 2)
	middleware := RateLimitMiddleware(limiter, "/api/")
	clientIP := "10.0.0.1:1234"

	if w := limitedRequest(middleware, "/api/palettes", clientIP); w.Code == 429 {
		t.Error("First request should be allowed")
	}
	if w := limitedRequest(middleware, "/api/palettes/1", clientIP); w.Code == 429 {
		t.Error("Second request should be allowed")
	}

	w3 := limitedRequest(middleware, "/api/palettes/1/export/css", clientIP)
	if w3.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w3.Code)
	}
	if w3.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w3.Header().Get("X-RateLimit-Limit"))
	}
	if w3.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}

	// Other clients keep their own bucket
	if w := limitedRequest(middleware, "/api/palettes", "10.0.0.2:1234"); w.Code == 429 {
		t.Error("Different client should not be rate limited")
	}
}

func TestRateLimitDifferentPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0.001, 1)
	middleware := RateLimitMiddleware(limiter, "/api/")

	for i := 0; i < 3; i++ {
		if w := limitedRequest(middleware, "/theme.css", "10.0.0.1:1234"); w.Code == 429 {
			t.Error("Paths outside the prefix should not be rate limited")
		}
	}
}

func TestRateLimiterSweepsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	start := time.Now()
	limiter.now = func() time.Time { return start }
	limiter.Allow("10.0.0.1")

	limiter.now = func() time.Time { return start.Add(idleTimeout + sweepInterval + time.Second) }
	limiter.Allow("10.0.0.2")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, ok := limiter.entries["10.0.0.1"]; ok {
		t.Error("Idle bucket should have been swept")
	}
	if _, ok := limiter.entries["10.0.0.2"]; !ok {
		t.Error("Active bucket should be kept")
	}
}

func TestRateLimitIgnoresForgedForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setBehindProxy(t, false)

	limiter := NewRateLimiter(0.001, 2)
	middleware := RateLimitMiddleware(limiter, "/api/")

	allowed := 0
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/palettes", nil)
		c.Request.RemoteAddr = "203.0.113.7:5555"
		c.Request.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		middleware(c)
		if w.Code != 429 {
			allowed++
		}
	}

	if allowed != 2 {
		t.Errorf("Expected only the burst of 2 to pass for one peer, got %d", allowed)
	}
}
