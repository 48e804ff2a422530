// Package handler provides HTTP handlers for all API endpoints. Rating
// handlers pass adapter records through verbatim: per-platform failures are
// encoded inside the record, so the HTTP status stays 200.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Muneer320/CPStats-API/internal/api/respond"
	"github.com/Muneer320/CPStats-API/internal/cache"
	"github.com/Muneer320/CPStats-API/internal/config"
	"github.com/Muneer320/CPStats-API/internal/fetcher"
	"github.com/Muneer320/CPStats-API/internal/provider"
)

// Version reported by the root and health endpoints.
const Version = "1.0.0"

// RatingService is the fetch core behind the rating endpoints.
// *fetcher.Fetcher implements it.
type RatingService interface {
	Rating(ctx context.Context, platform, username string) provider.Record
	RatingBatch(ctx context.Context, reqs []fetcher.Request) provider.BatchResult
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc   RatingService
	cache *cache.Cache
	cfg   *config.Config
}

// New creates a Handler with shared dependencies.
func New(svc RatingService, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cache: c, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, supported platforms, and endpoint map.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	platforms := make([]string, len(config.PlatformRegistry))
	for i, p := range config.PlatformRegistry {
		platforms[i] = p.Name
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message":             "CPStats API",
		"version":             Version,
		"status":              "online",
		"supported_platforms": platforms,
		"endpoints": map[string]string{
			"single_rating":    "/rating/{platform}/{username}",
			"multiple_ratings": "/ratings (POST)",
			"health":           "/health",
			"platforms":        "/platforms",
		},
		"rate_limit": h.cfg.RateLimitDescription(),
	})
}

// HealthCheck returns service health and environment info.
// @Summary Health check
// @Description Returns health status, timestamp, version, and non-sensitive environment info.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"message":   "API is running",
		"timestamp": time.Now().Unix(),
		"version":   Version,
		"environment": map[string]interface{}{
			"debug":         h.cfg.Debug,
			"cache_enabled": h.cfg.CacheEnabled,
			"rate_limit":    h.cfg.RateLimitDescription(),
		},
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory rating cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().Unix(),
	})
}

// GetPlatforms lists the supported platforms.
// @Summary Supported platforms
// @Description Returns the closed set of supported rating platforms with descriptions.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /platforms [get]
func (h *Handler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"platforms": config.PlatformRegistry,
	})
}
