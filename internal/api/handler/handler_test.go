package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muneer320/CPStats-API/internal/api"
	"github.com/Muneer320/CPStats-API/internal/cache"
	"github.com/Muneer320/CPStats-API/internal/config"
	"github.com/Muneer320/CPStats-API/internal/fetcher"
	"github.com/Muneer320/CPStats-API/internal/provider"
)

const testAPIKey = "test-key"

// stubService returns canned records so handler behavior can be tested
// without network access.
type stubService struct {
	record      provider.Record
	batchResult provider.BatchResult
	ratingCalls int
}

func (s *stubService) Rating(ctx context.Context, platform, username string) provider.Record {
	s.ratingCalls++
	rec := s.record
	rec.Platform = provider.NormalizePlatform(platform)
	rec.Username = username
	return rec
}

func (s *stubService) RatingBatch(ctx context.Context, reqs []fetcher.Request) provider.BatchResult {
	return s.batchResult
}

func testConfig() *config.Config {
	return &config.Config{
		APIKey:           testAPIKey,
		Environment:      "test",
		CORSAllowOrigins: []string{"*"},
		MaxBatchSize:     20,
		CacheEnabled:     true,
		CacheBucket:      time.Hour,
		RateLimitWindow:  time.Hour,
	}
}

func newTestServer(t *testing.T, svc *stubService) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(svc, cache.New(true), testConfig()))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, body string, authed bool) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if authed {
		req.Header.Set("Authorization", "Bearer "+testAPIKey)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestGetRating(t *testing.T) {
	svc := &stubService{
		record: provider.Record{
			Rating:    1500,
			MaxRating: provider.Int(1700),
			Rank:      "expert",
			Status:    provider.StatusSuccess,
		},
	}
	srv := newTestServer(t, svc)

	resp := doRequest(t, srv, http.MethodGet, "/rating/codeforces/tourist", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.NotEmpty(t, resp.Header.Get("ETag"))

	var rec provider.Record
	decodeBody(t, resp, &rec)
	assert.Equal(t, "codeforces", rec.Platform)
	assert.Equal(t, "tourist", rec.Username)
	assert.Equal(t, 1500, rec.Rating)
	assert.Equal(t, provider.StatusSuccess, rec.Status)
}

func TestGetRatingFailureRecordIsStill200(t *testing.T) {
	svc := &stubService{
		record: provider.Record{Status: provider.StatusUserNotFound, Error: "User not found"},
	}
	srv := newTestServer(t, svc)

	resp := doRequest(t, srv, http.MethodGet, "/rating/codeforces/nobody", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rec provider.Record
	decodeBody(t, resp, &rec)
	assert.Equal(t, provider.StatusUserNotFound, rec.Status)
	assert.Equal(t, "User not found", rec.Error)
}

func TestGetRatingUnauthorized(t *testing.T) {
	svc := &stubService{record: provider.Record{Status: provider.StatusSuccess}}
	srv := newTestServer(t, svc)

	resp := doRequest(t, srv, http.MethodGet, "/rating/codeforces/tourist", "", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, svc.ratingCalls)
}

func TestGetRatingCacheHit(t *testing.T) {
	svc := &stubService{record: provider.Record{Rating: 1500, Status: provider.StatusSuccess}}
	srv := newTestServer(t, svc)

	first := doRequest(t, srv, http.MethodGet, "/rating/codeforces/tourist", "", true)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

	second := doRequest(t, srv, http.MethodGet, "/rating/codeforces/tourist", "", true)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, 1, svc.ratingCalls, "second lookup must be served from cache")
}

func TestGetRatingETagNotModified(t *testing.T) {
	svc := &stubService{record: provider.Record{Rating: 1500, Status: provider.StatusSuccess}}
	srv := newTestServer(t, svc)

	first := doRequest(t, srv, http.MethodGet, "/rating/codeforces/tourist", "", true)
	etag := first.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/rating/codeforces/tourist", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("If-None-Match", etag)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestPostRating(t *testing.T) {
	svc := &stubService{record: provider.Record{Rating: 2100, Status: provider.StatusSuccess}}
	srv := newTestServer(t, svc)

	resp := doRequest(t, srv, http.MethodPost, "/rating", `{"platform":"LeetCode","username":"alice"}`, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rec provider.Record
	decodeBody(t, resp, &rec)
	assert.Equal(t, "leetcode", rec.Platform)
	assert.Equal(t, 2100, rec.Rating)
}

func TestPostRatingInvalidBody(t *testing.T) {
	srv := newTestServer(t, &stubService{})
	resp := doRequest(t, srv, http.MethodPost, "/rating", `not json`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostRatings(t *testing.T) {
	svc := &stubService{
		batchResult: provider.BatchResult{
			Results: []provider.Record{
				{Platform: "codeforces", Username: "a", Rating: 1500, Status: provider.StatusSuccess},
				{Platform: "leetcode", Username: "b", Rating: 1800, Status: provider.StatusSuccess},
			},
			AverageRating:      1650.00,
			TotalRequests:      2,
			SuccessfulRequests: 2,
			ValidRatingsCount:  2,
		},
	}
	srv := newTestServer(t, svc)

	body := `{"requests":[{"platform":"codeforces","username":"a"},{"platform":"leetcode","username":"b"}]}`
	resp := doRequest(t, srv, http.MethodPost, "/ratings", body, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result provider.BatchResult
	decodeBody(t, resp, &result)
	require.Len(t, result.Results, 2)
	assert.Equal(t, 1650.00, result.AverageRating)
	assert.Equal(t, 2, result.TotalRequests)
}

func TestPostRatingsEmptyBatch(t *testing.T) {
	srv := newTestServer(t, &stubService{})
	resp := doRequest(t, srv, http.MethodPost, "/ratings", `{"requests":[]}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &e)
	assert.Equal(t, "EMPTY_BATCH", e.Error.Code)
	assert.Equal(t, "No requests provided", e.Error.Message)
}

func TestPostRatingsBatchTooLarge(t *testing.T) {
	srv := newTestServer(t, &stubService{})

	items := make([]string, 21)
	for i := range items {
		items[i] = `{"platform":"codeforces","username":"x"}`
	}
	body := `{"requests":[` + strings.Join(items, ",") + `]}`

	resp := doRequest(t, srv, http.MethodPost, "/ratings", body, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &e)
	assert.Equal(t, "BATCH_TOO_LARGE", e.Error.Code)
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t, &stubService{})
	resp := doRequest(t, srv, http.MethodGet, "/", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "CPStats API", body["message"])
	assert.Equal(t, "online", body["status"])
	assert.Contains(t, body, "supported_platforms")
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, &stubService{})
	resp := doRequest(t, srv, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "environment")
}

func TestHealthCheckCache(t *testing.T) {
	srv := newTestServer(t, &stubService{})
	resp := doRequest(t, srv, http.MethodGet, "/health/cache", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body, "cache")
}

func TestGetPlatforms(t *testing.T) {
	srv := newTestServer(t, &stubService{})
	resp := doRequest(t, srv, http.MethodGet, "/platforms", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Platforms []config.PlatformConfig `json:"platforms"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Platforms, 4)
	names := make([]string, 0, len(body.Platforms))
	for _, p := range body.Platforms {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"leetcode", "codeforces", "codechef", "atcoder"}, names)
}
