// SPDX-License-Identifier: MIT

// Package server assembles the brandkit HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xilkadim/brandkit/internal/config"
	"github.com/xilkadim/brandkit/internal/handlers"
	"github.com/xilkadim/brandkit/internal/middleware"
	"go.uber.org/zap"
)

// New builds the router with middleware and routes. The rate limiter, IP
// blocklist and HSTS switch are read from config.
func New(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger(logger, "/health", "/metrics"))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.blocked_ips")))

	r.SetHTMLTemplate(handlers.Templates())

	// System routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "brandkit",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Dashboard
	r.GET("/", handlers.DashboardHandler)
	r.GET("/theme.css", handlers.ThemeCSSHandler)
	r.GET("/assets/layout.css", handlers.LayoutCSSHandler)

	// JSON API
	limiter := middleware.NewRateLimiter(rateLimit())
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limiter, "/api/"))
	{
		api.GET("/formats", handlers.FormatsHandler)
		api.GET("/palettes", handlers.ListPalettesHandler)
		api.GET("/palettes/:id", handlers.GetPaletteHandler)
		api.GET("/palettes/:id/export/:format", handlers.ExportPaletteHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}

// rateLimit falls back to 10 req/s with a burst of 20 when unset
func rateLimit() (float64, int) {
	rps := config.GetFloat64("server.rate_limit.rps")
	if rps <= 0 {
		rps = 10
	}
	burst := config.GetInt("server.rate_limit.burst")
	if burst <= 0 {
		burst = 20
	}
	return rps, burst
}
