// Package leetcode fetches contest ratings from the LeetCode GraphQL API.
package leetcode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Muneer320/CPStats-API/internal/provider"
)

// DefaultBaseURL is the production LeetCode endpoint.
const DefaultBaseURL = "https://leetcode.com"

const profileQuery = `
query getUserProfile($username: String!) {
    matchedUser(username: $username) {
        username
        profile {
            ranking
        }
    }
    userContestRanking(username: $username) {
        attendedContestsCount
        rating
        globalRanking
        topPercentage
    }
}`

// Adapter fetches LeetCode ratings via a single GraphQL POST per call.
type Adapter struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

// New creates a LeetCode adapter on a shared transport client.
func New(client *resty.Client, baseURL string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{client: client, baseURL: baseURL, logger: logger}
}

func (a *Adapter) Platform() provider.Platform {
	return provider.LeetCode
}

// graphqlResponse mirrors the slice of the GraphQL payload we read.
// matchedUser is null for unknown users; userContestRanking is null for
// users with no contest history — that is not a failure.
type graphqlResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  *struct {
				Ranking *int `json:"ranking"`
			} `json:"profile"`
		} `json:"matchedUser"`
		UserContestRanking *struct {
			AttendedContestsCount int     `json:"attendedContestsCount"`
			Rating                float64 `json:"rating"`
			GlobalRanking         *int    `json:"globalRanking"`
		} `json:"userContestRanking"`
	} `json:"data"`
}

// Fetch issues the GraphQL query and normalizes the response.
func (a *Adapter) Fetch(ctx context.Context, username string) provider.Record {
	payload := map[string]interface{}{
		"query":     profileQuery,
		"variables": map[string]string{"username": username},
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(a.baseURL + "/graphql")
	if err != nil {
		return provider.TransportRecord(provider.LeetCode, username, err)
	}
	if resp.StatusCode() != http.StatusOK {
		a.logger.Warn("leetcode non-OK response", "status", resp.StatusCode(), "username", username)
		return provider.NotFoundRecord(provider.LeetCode, username)
	}

	var body graphqlResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return provider.ErrorRecord(provider.LeetCode, username, err.Error())
	}

	user := body.Data.MatchedUser
	if user == nil {
		return provider.NotFoundRecord(provider.LeetCode, username)
	}

	rec := provider.Record{
		Platform:         string(provider.LeetCode),
		Username:         username,
		ContestsAttended: provider.Int(0),
		Status:           provider.StatusSuccess,
	}
	if contest := body.Data.UserContestRanking; contest != nil {
		rec.Rating = int(contest.Rating)
		rec.GlobalRanking = contest.GlobalRanking
		rec.ContestsAttended = provider.Int(contest.AttendedContestsCount)
	}
	if user.Profile != nil {
		rec.ProfileRanking = user.Profile.Ranking
	}
	return rec
}
