// Package codechef scrapes ratings from CodeChef profile pages.
//
// CodeChef has no public rating API, so everything here works off rendered
// HTML. Every field is extracted independently with its own default: the
// markup drifts, and one broken selector must degrade that field only, not
// the whole record.
package codechef

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/Muneer320/CPStats-API/internal/provider"
)

// DefaultBaseURL is the production CodeChef endpoint.
const DefaultBaseURL = "https://www.codechef.com"

// notFoundMarker is a textual heuristic, not a structured signal: CodeChef
// serves a 200 page with this phrase for missing users. Known weak point —
// a site copy change silently breaks missing-user detection.
const notFoundMarker = "does not exist"

const (
	ratingSelector      = ".rating-number"
	starsSelector       = ".rating-star"
	countryFlagSelector = ".user-country-flag"
	countryNameSelector = ".user-country-name"
	ranksSelector       = ".rating-ranks li"
)

// Adapter scrapes CodeChef profiles via a single HTML GET per call.
type Adapter struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

// New creates a CodeChef adapter on a shared transport client.
func New(client *resty.Client, baseURL string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{client: client, baseURL: baseURL, logger: logger}
}

func (a *Adapter) Platform() provider.Platform {
	return provider.CodeChef
}

// Fetch downloads the profile page and extracts rating fields selector by
// selector. Absence of a field is not a failure: a page with none of the
// expected markup still yields a success record with zeroed fields.
func (a *Adapter) Fetch(ctx context.Context, username string) provider.Record {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(a.baseURL + "/users/" + username)
	if err != nil {
		return provider.TransportRecord(provider.CodeChef, username, err)
	}
	body := resp.Body()
	if resp.StatusCode() != http.StatusOK ||
		strings.Contains(strings.ToLower(string(body)), notFoundMarker) {
		return provider.NotFoundRecord(provider.CodeChef, username)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return provider.ErrorRecord(provider.CodeChef, username, err.Error())
	}

	rating := 0
	if n, ok := provider.Digits(doc.Find(ratingSelector).First().Text()); ok {
		rating = n
	}
	maxRating := extractMaxRating(doc)
	globalRank, countryRank := extractRanks(doc)

	stars := strings.TrimSpace(doc.Find(starsSelector).First().Text())
	if stars == "" {
		stars = "unrated"
	}

	rec := provider.Record{
		Platform:    string(provider.CodeChef),
		Username:    username,
		Rating:      rating,
		MaxRating:   provider.Int(maxRating),
		GlobalRank:  provider.Int(globalRank),
		CountryRank: provider.Int(countryRank),
		Country:     strings.TrimSpace(doc.Find(countryNameSelector).First().Text()),
		CountryFlag: doc.Find(countryFlagSelector).First().AttrOr("src", ""),
		Stars:       stars,
		Status:      provider.StatusSuccess,
	}
	rec.ClampMaxRating()
	return rec
}

// extractMaxRating walks the rating element's siblings and reads the last
// non-whitespace one, which carries text like "(Highest Rating 1823)". The
// digits after the literal "Rating" are the highest rating.
func extractMaxRating(doc *goquery.Document) int {
	var last *goquery.Selection
	doc.Find(ratingSelector).First().Siblings().Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != "" {
			last = s
		}
	})
	if last == nil {
		return 0
	}
	n, ok := provider.DigitsAfter(last.Text(), "Rating")
	if !ok {
		return 0
	}
	return n
}

// extractRanks scans the list items under the ranks container and matches
// on label text. Each rank degrades to 0 independently.
func extractRanks(doc *goquery.Document) (globalRank, countryRank int) {
	doc.Find(ranksSelector).Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		switch {
		case strings.Contains(text, "Global Rank"):
			if n, ok := provider.Digits(text); ok {
				globalRank = n
			}
		case strings.Contains(text, "Country Rank"):
			if n, ok := provider.Digits(text); ok {
				countryRank = n
			}
		}
	})
	return globalRank, countryRank
}
