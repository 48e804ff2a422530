// Package provider defines the canonical rating types that all platform
// adapters normalize into. These structs are the contract between the
// adapters and the fetch orchestrator — adapters output these, the API
// layer serializes them verbatim.
//
// Adding a new platform means implementing the Adapter interface and
// registering it with the fetcher. The record shape never changes.
package provider

import "math"

// Status is the terminal outcome of a single fetch attempt.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusUserNotFound Status = "user_not_found"
	StatusError        Status = "error"
)

// Record is the normalized result of one platform/username fetch. It is
// created once per attempt and never mutated afterwards. A rating of 0 is
// the "unknown/unrated/not found" sentinel, not a real rating.
//
// Platform-specific extras are pointers or omitempty strings: a platform
// that does not expose a field leaves it absent rather than fabricating it.
type Record struct {
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	MaxRating *int   `json:"max_rating,omitempty"`

	// Codeforces
	Rank         string `json:"rank,omitempty"`
	MaxRank      string `json:"max_rank,omitempty"`
	Contribution *int   `json:"contribution,omitempty"`

	// LeetCode
	GlobalRanking    *int `json:"global_ranking,omitempty"`
	ContestsAttended *int `json:"contests_attended,omitempty"`
	ProfileRanking   *int `json:"profile_ranking,omitempty"`

	// CodeChef / AtCoder
	GlobalRank  *int   `json:"global_rank,omitempty"`
	CountryRank *int   `json:"country_rank,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryFlag string `json:"country_flag,omitempty"`
	Stars       string `json:"stars,omitempty"`

	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ClampMaxRating enforces max_rating >= rating. The max-rating extraction is
// the less reliable of the two numbers on the scraped platforms, so an
// inconsistent pair is resolved in favor of the current rating.
func (r *Record) ClampMaxRating() {
	if r.MaxRating != nil && *r.MaxRating < r.Rating {
		r.MaxRating = Int(r.Rating)
	}
}

// NotFoundRecord builds the standard user_not_found record.
func NotFoundRecord(platform Platform, username string) Record {
	return Record{
		Platform: string(platform),
		Username: username,
		Status:   StatusUserNotFound,
		Error:    "User not found",
	}
}

// ErrorRecord builds an error record with the given message.
func ErrorRecord(platform Platform, username, msg string) Record {
	return Record{
		Platform: string(platform),
		Username: username,
		Status:   StatusError,
		Error:    msg,
	}
}

// Int returns a pointer to v, for optional numeric record fields.
func Int(v int) *int {
	return &v
}

// BatchResult aggregates the records of one batch run plus summary
// statistics. Results preserves input order, one record per request.
type BatchResult struct {
	Results            []Record `json:"results"`
	AverageRating      float64  `json:"average_rating"`
	TotalRequests      int      `json:"total_requests"`
	SuccessfulRequests int      `json:"successful_requests"`
	ValidRatingsCount  int      `json:"valid_ratings_count"`
}

// RoundAverage rounds a mean rating to 2 decimal places.
func RoundAverage(v float64) float64 {
	return math.Round(v*100) / 100
}
