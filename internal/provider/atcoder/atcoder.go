// Package atcoder scrapes ratings from AtCoder profile pages.
//
// AtCoder profile markup has no usable classes or ids on its data cells, so
// extraction is a positional label scan: walk every table cell in document
// order and interpret the cell after a known label as that label's value.
// This is brittle against markup reordering and kept deliberately simple.
package atcoder

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

// DefaultBaseURL is the production AtCoder endpoint.
const DefaultBaseURL = "https://atcoder.jp"

// Adapter scrapes AtCoder profiles via a single HTML GET per call.
type Adapter struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

// New creates an AtCoder adapter on a shared transport client.
func New(client *resty.Client, baseURL string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{client: client, baseURL: baseURL, logger: logger}
}

func (a *Adapter) Platform() provider.Platform {
	return provider.AtCoder
}

// Fetch downloads the profile page and runs the label scan. A page with no
// matching cells at all still yields a success record with zeroed fields.
func (a *Adapter) Fetch(ctx context.Context, username string) provider.Record {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(a.baseURL + "/users/" + username)
	if err != nil {
		return provider.TransportRecord(provider.AtCoder, username, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return provider.NotFoundRecord(provider.AtCoder, username)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return provider.ErrorRecord(provider.AtCoder, username, err.Error())
	}

	cells := tableCells(doc)

	// Rating and Highest Rating take the first matching label; Rank and
	// Country keep scanning, so a later label overrides an earlier one.
	// Asymmetric on purpose: this reproduces the observed behavior of the
	// site-specific scan, locked in by tests.
	rating := 0
	if v, ok := provider.FirstLabelValue(cells, func(c string) bool { return c == "Rating" }); ok {
		if n, ok := provider.Digits(v); ok {
			rating = n
		}
	}
	maxRating := 0
	if v, ok := provider.FirstLabelValue(cells, contains("Highest Rating")); ok {
		if n, ok := provider.Digits(v); ok {
			maxRating = n
		}
	}
	rank := 0
	if v, ok := provider.LastLabelValue(cells, contains("Rank")); ok {
		if n, ok := provider.Digits(v); ok {
			rank = n
		}
	}
	country := ""
	if v, ok := provider.LastLabelValue(cells, contains("Country")); ok {
		country = v
	}

	rec := provider.Record{
		Platform:   string(provider.AtCoder),
		Username:   username,
		Rating:     rating,
		MaxRating:  provider.Int(maxRating),
		GlobalRank: provider.Int(rank),
		Country:    country,
		Status:     provider.StatusSuccess,
	}
	rec.ClampMaxRating()
	return rec
}

// tableCells returns the trimmed text of every table cell in document
// order. Header cells count: AtCoder renders its labels as <th>.
func tableCells(doc *goquery.Document) []string {
	sel := doc.Find("table th, table td")
	cells := make([]string, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		cells[i] = strings.TrimSpace(s.Text())
	})
	return cells
}

func contains(label string) func(string) bool {
	return func(cell string) bool {
		return strings.Contains(cell, label)
	}
}
