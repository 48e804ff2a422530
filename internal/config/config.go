// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/cpstats.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Platform registry — descriptors served by /platforms and the CLI
// --------------------------------------------------------------------------

type PlatformConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RatingType  string `json:"rating_type"`
}

var PlatformRegistry = []PlatformConfig{
	{Name: "leetcode", Description: "LeetCode competitive programming platform", RatingType: "Contest rating"},
	{Name: "codeforces", Description: "Codeforces competitive programming platform", RatingType: "Contest rating"},
	{Name: "codechef", Description: "CodeChef competitive programming platform", RatingType: "Contest rating"},
	{Name: "atcoder", Description: "AtCoder competitive programming platform", RatingType: "Contest rating"},
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIKey      string
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound, per client IP)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Outbound fetching
	RequestTimeout time.Duration
	FetchDelay     time.Duration
	MaxBatchSize   int

	// Cache
	CacheEnabled bool
	CacheBucket  time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. APIKey may be empty here; cmd/api refuses to serve without it,
// the CLI does not need it.
func Load() (*Config, error) {
	return &Config{
		APIKey:      os.Getenv("API_KEY"),
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("ALLOWED_ORIGINS", []string{
			"https://discord.com",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 3600)) * time.Second,

		RequestTimeout: time.Duration(envInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		FetchDelay:     time.Duration(envInt("FETCH_DELAY_MS", 500)) * time.Millisecond,
		MaxBatchSize:   envInt("MAX_BATCH_SIZE", 20),

		CacheEnabled: envBool("ENABLE_CACHE", true),
		CacheBucket:  time.Duration(envInt("CACHE_BUCKET_SECONDS", 300)) * time.Second,
	}, nil
}

// RateLimitDescription renders the limit the way /health and / report it.
func (c *Config) RateLimitDescription() string {
	return strconv.Itoa(c.RateLimitRequests) + " requests per " +
		strconv.Itoa(int(c.RateLimitWindow.Minutes())) + " minutes"
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
