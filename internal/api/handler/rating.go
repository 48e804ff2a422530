package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Muneer320/CPStats-API/internal/api/respond"
	"github.com/Muneer320/CPStats-API/internal/cache"
	"github.com/Muneer320/CPStats-API/internal/fetcher"
	"github.com/Muneer320/CPStats-API/internal/provider"
)

// singleRequest is the POST /rating body.
type singleRequest struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
}

// batchRequest is the POST /ratings body.
type batchRequest struct {
	Requests []fetcher.Request `json:"requests"`
}

// GetRating returns the rating for one platform/username.
// @Summary Get single rating
// @Description Fetches the current rating for a username on one platform. Per-platform failures are reported inside the record with HTTP 200.
// @Tags ratings
// @Produce json
// @Security ApiKeyAuth
// @Param platform path string true "Platform name" Enums(leetcode, codeforces, codechef, atcoder)
// @Param username path string true "Username on the platform"
// @Success 200 {object} provider.Record
// @Failure 401 {object} respond.ErrorResponse
// @Router /rating/{platform}/{username} [get]
func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	username := chi.URLParam(r, "username")
	h.serveRating(w, r, platform, username)
}

// PostRating returns the rating for one platform/username (POST form).
// @Summary Get single rating (POST)
// @Description POST variant of /rating/{platform}/{username}.
// @Tags ratings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body singleRequest true "Platform and username"
// @Success 200 {object} provider.Record
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /rating [post]
func (h *Handler) PostRating(w http.ResponseWriter, r *http.Request) {
	var req singleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with platform and username")
		return
	}
	h.serveRating(w, r, req.Platform, req.Username)
}

// serveRating runs the cached single-fetch path shared by GET and POST.
// The cache key includes the current time bucket, so entries implicitly
// expire at bucket boundaries.
func (h *Handler) serveRating(w http.ResponseWriter, r *http.Request, platform, username string) {
	bucket := cache.Bucket(time.Now(), h.cfg.CacheBucket)
	key := cache.Key(provider.NormalizePlatform(platform), username, bucket)
	// Entries expire at the bucket boundary, not a fixed interval after the
	// first lookup.
	ttl := time.Until(time.Unix((bucket+1)*int64(h.cfg.CacheBucket.Seconds()), 0))

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	rec := h.svc.Rating(r.Context(), platform, username)

	data, err := json.Marshal(rec)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "MARSHAL_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

// PostRatings runs a batch of rating lookups.
// @Summary Get multiple ratings
// @Description Fetches ratings for up to 20 platform/username pairs sequentially with pacing, and returns per-item records plus aggregate statistics. Item failures never abort the batch.
// @Tags ratings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body batchRequest true "Batch of platform/username pairs"
// @Success 200 {object} provider.BatchResult
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /ratings [post]
func (h *Handler) PostRatings(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a requests list")
		return
	}
	if len(req.Requests) == 0 {
		respond.WriteError(w, http.StatusBadRequest, "EMPTY_BATCH", "No requests provided")
		return
	}
	if len(req.Requests) > h.cfg.MaxBatchSize {
		respond.WriteError(w, http.StatusBadRequest, "BATCH_TOO_LARGE", "Maximum 20 requests per batch")
		return
	}

	result := h.svc.RatingBatch(r.Context(), req.Requests)
	respond.WriteJSONObject(w, http.StatusOK, result)
}
