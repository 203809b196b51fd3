// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	if len(id) != 36 {
		t.Errorf("Expected generated UUID request id, got %q", id)
	}
	if w.Body.String() != id {
		t.Errorf("Handler saw request id %q, header has %q", w.Body.String(), id)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("Expected propagated request id, got %q", got)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestIDMiddleware(), RequestLogger(zap.New(core), "/health"))
	r.GET("/api/palettes/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/palettes/:id", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/palettes/99", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry (health skipped), got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("Expected warn level for 404, got %s", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["route"] != "/api/palettes/:id" {
		t.Errorf("Expected route template in log, got %v", fields["route"])
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/palettes/:id", "404"))
	if after != before+1 {
		t.Errorf("Expected request counter to grow by 1, got %v -> %v", before, after)
	}
}
