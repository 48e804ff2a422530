// Package fetcher dispatches rating lookups to platform adapters and runs
// paced batches over them.
package fetcher

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/Muneer320/CPStats-API/internal/provider"
	"github.com/Muneer320/CPStats-API/internal/provider/atcoder"
	"github.com/Muneer320/CPStats-API/internal/provider/codechef"
	"github.com/Muneer320/CPStats-API/internal/provider/codeforces"
	"github.com/Muneer320/CPStats-API/internal/provider/leetcode"
)

// userAgent mimics a desktop browser; the scraped platforms serve reduced
// pages to unknown clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Request is one platform/username pair in a batch.
type Request struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
}

// Fetcher owns the adapter set, the shared transport client, and the batch
// pacing policy. It is stateless across calls and safe for concurrent use.
type Fetcher struct {
	adapters map[provider.Platform]provider.Adapter
	delay    time.Duration
	logger   *slog.Logger
}

// New builds a Fetcher with the production adapters on one long-lived
// transport client. timeout bounds each outbound request; delay is the
// pacing interval between network-bound items inside a batch.
func New(timeout, delay time.Duration, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return NewWithAdapters(delay, logger,
		leetcode.New(client, leetcode.DefaultBaseURL, logger),
		codeforces.New(client, codeforces.DefaultBaseURL, logger),
		codechef.New(client, codechef.DefaultBaseURL, logger),
		atcoder.New(client, atcoder.DefaultBaseURL, logger),
	)
}

// NewWithAdapters wires an explicit adapter set. Tests use this to register
// fakes.
func NewWithAdapters(delay time.Duration, logger *slog.Logger, adapters ...provider.Adapter) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	m := make(map[provider.Platform]provider.Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Platform()] = a
	}
	return &Fetcher{adapters: m, delay: delay, logger: logger}
}

// Rating dispatches a single lookup to the matching adapter. An identifier
// outside the closed platform set yields a terminal error record without
// any network call.
func (f *Fetcher) Rating(ctx context.Context, platform, username string) provider.Record {
	username = strings.TrimSpace(username)
	normalized := provider.NormalizePlatform(platform)

	p, ok := provider.ParsePlatform(platform)
	if !ok || f.adapters[p] == nil {
		return provider.Record{
			Platform: normalized,
			Username: username,
			Status:   provider.StatusError,
			Error:    "Unsupported platform: " + normalized,
		}
	}

	rec := f.adapters[p].Fetch(ctx, username)
	f.logger.Debug("rating fetched",
		"platform", normalized, "username", username, "status", rec.Status)
	return rec
}

// RatingBatch runs the requests sequentially in input order and folds the
// records into a BatchResult. One item's failure never stops the rest.
//
// Pacing stays under the external sites' informal rate limits, nothing
// more: a burst-1 limiter lets the first network-bound item through
// immediately and spaces out the ones after it. Malformed items are
// rejected without consuming a pacing slot.
func (f *Fetcher) RatingBatch(ctx context.Context, reqs []Request) provider.BatchResult {
	limiter := rate.NewLimiter(rate.Every(f.delay), 1)

	results := make([]provider.Record, 0, len(reqs))
	var ratingSum, validCount, successCount int

	for _, req := range reqs {
		platform := provider.NormalizePlatform(req.Platform)
		username := strings.TrimSpace(req.Username)

		if platform == "" || username == "" {
			results = append(results, provider.Record{
				Platform: platform,
				Username: username,
				Status:   provider.StatusError,
				Error:    "Platform and username are required",
			})
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			results = append(results, provider.ErrorRecord(
				provider.Platform(platform), username, err.Error()))
			continue
		}

		rec := f.Rating(ctx, platform, username)
		results = append(results, rec)

		if rec.Status == provider.StatusSuccess {
			successCount++
			if rec.Rating > 0 {
				ratingSum += rec.Rating
				validCount++
			}
		}
	}

	average := 0.0
	if validCount > 0 {
		average = provider.RoundAverage(float64(ratingSum) / float64(validCount))
	}

	return provider.BatchResult{
		Results:            results,
		AverageRating:      average,
		TotalRequests:      len(reqs),
		SuccessfulRequests: successCount,
		ValidRatingsCount:  validCount,
	}
}
