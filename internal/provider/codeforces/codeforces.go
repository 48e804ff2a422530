// Package codeforces fetches ratings from the Codeforces user.info API.
package codeforces

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/Muneer320/CPStats-API/internal/provider"
)

// DefaultBaseURL is the production Codeforces endpoint.
const DefaultBaseURL = "https://codeforces.com"

// Adapter fetches Codeforces ratings via a single user.info GET per call.
type Adapter struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

// New creates a Codeforces adapter on a shared transport client.
func New(client *resty.Client, baseURL string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{client: client, baseURL: baseURL, logger: logger}
}

func (a *Adapter) Platform() provider.Platform {
	return provider.Codeforces
}

// userInfoResponse is the user.info envelope. Every numeric/enum field gets
// an explicit default when absent; the API is stable JSON, but schema drift
// must degrade gracefully rather than zero out the record.
type userInfoResponse struct {
	Status string `json:"status"`
	Result []struct {
		Rating       int    `json:"rating"`
		MaxRating    int    `json:"maxRating"`
		Rank         string `json:"rank"`
		MaxRank      string `json:"maxRank"`
		Contribution int    `json:"contribution"`
	} `json:"result"`
}

// Fetch looks up the handle and normalizes the response.
func (a *Adapter) Fetch(ctx context.Context, username string) provider.Record {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(a.baseURL + "/api/user.info?handles=" + url.QueryEscape(username))
	if err != nil {
		return provider.TransportRecord(provider.Codeforces, username, err)
	}
	// Codeforces answers 400 with status=FAILED for unknown handles.
	if resp.StatusCode() != http.StatusOK {
		return provider.NotFoundRecord(provider.Codeforces, username)
	}

	var body userInfoResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return provider.ErrorRecord(provider.Codeforces, username, err.Error())
	}
	if body.Status != "OK" || len(body.Result) == 0 {
		return provider.NotFoundRecord(provider.Codeforces, username)
	}

	user := body.Result[0]
	rank := user.Rank
	if rank == "" {
		rank = "unrated"
	}
	maxRank := user.MaxRank
	if maxRank == "" {
		maxRank = "unrated"
	}

	rec := provider.Record{
		Platform:     string(provider.Codeforces),
		Username:     username,
		Rating:       user.Rating,
		MaxRating:    provider.Int(user.MaxRating),
		Rank:         rank,
		MaxRank:      maxRank,
		Contribution: provider.Int(user.Contribution),
		Status:       provider.StatusSuccess,
	}
	rec.ClampMaxRating()
	return rec
}
