// Package api wires the Chi router, middleware stack, and endpoint
// handlers for the CPStats HTTP surface.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Muneer320/CPStats-API/internal/api/handler"
	"github.com/Muneer320/CPStats-API/internal/cache"
	"github.com/Muneer320/CPStats-API/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. Rating endpoints sit behind API-key auth; meta and health
// endpoints are open.
func NewRouter(svc handler.RatingService, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Authorization", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow, nil))
	}

	// --- Handler dependencies ---
	h := handler.New(svc, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Platforms
	r.Get("/platforms", h.GetPlatforms)

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Rating endpoints require an API key.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.APIKey))
		r.Get("/rating/{platform}/{username}", h.GetRating)
		r.Post("/rating", h.PostRating)
		r.Post("/ratings", h.PostRatings)
	})

	return r
}
