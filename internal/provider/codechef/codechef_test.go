package codechef

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Muneer320/CPStats-API/internal/provider"
)

const profilePage = `<html><body>
<div class="rating-header">
  <div class="rating-number">1823?</div>
  <small>(Highest Rating 1912)</small>
</div>
<span class="rating-star">4★</span>
<section class="user-details">
  <img class="user-country-flag" src="https://cdn.codechef.com/flags/in.png"/>
  <span class="user-country-name">India</span>
</section>
<div class="rating-ranks">
  <ul>
    <li><a><strong>1234</strong>Global Rank</a></li>
    <li><a><strong>56</strong>Country Rank</a></li>
  </ul>
</div>
</body></html>`

func testAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(resty.New().SetTimeout(2*time.Second), srv.URL, nil)
}

func servePage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}
}

func TestFetchSuccess(t *testing.T) {
	a := testAdapter(t, servePage(profilePage))

	rec := a.Fetch(context.Background(), "gennady")
	assert.Equal(t, provider.StatusSuccess, rec.Status)
	assert.Equal(t, "codechef", rec.Platform)
	assert.Equal(t, 1823, rec.Rating)
	assert.Equal(t, provider.Int(1912), rec.MaxRating)
	assert.Equal(t, provider.Int(1234), rec.GlobalRank)
	assert.Equal(t, provider.Int(56), rec.CountryRank)
	assert.Equal(t, "India", rec.Country)
	assert.Equal(t, "https://cdn.codechef.com/flags/in.png", rec.CountryFlag)
	assert.Equal(t, "4★", rec.Stars)
}

func TestFetchNotFoundMarker(t *testing.T) {
	// CodeChef serves the marker phrase with a 200 status.
	a := testAdapter(t, servePage(`<html><body><p>The username you entered Does Not Exist</p></body></html>`))

	rec := a.Fetch(context.Background(), "ghost")
	assert.Equal(t, provider.StatusUserNotFound, rec.Status)
}

func TestFetchNotFoundStatus(t *testing.T) {
	a := testAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := a.Fetch(context.Background(), "ghost")
	assert.Equal(t, provider.StatusUserNotFound, rec.Status)
}

func TestFetchNoMatchingMarkup(t *testing.T) {
	// Absence of every expected field is not a failure: the record degrades
	// to defaults but stays a success.
	a := testAdapter(t, servePage(`<html><body><h1>Totally redesigned page</h1></body></html>`))

	rec := a.Fetch(context.Background(), "someone")
	assert.Equal(t, provider.StatusSuccess, rec.Status)
	assert.Equal(t, 0, rec.Rating)
	assert.Equal(t, provider.Int(0), rec.MaxRating)
	assert.Equal(t, provider.Int(0), rec.GlobalRank)
	assert.Equal(t, provider.Int(0), rec.CountryRank)
	assert.Equal(t, "unrated", rec.Stars)
	assert.Empty(t, rec.Country)
	assert.Empty(t, rec.CountryFlag)
}

func TestFetchMaxRatingClamped(t *testing.T) {
	// The sibling-walk extraction is the less reliable number; never emit
	// max_rating below rating.
	page := `<html><body>
<div class="rating-header">
  <div class="rating-number">2000</div>
  <small>(Highest Rating 1500)</small>
</div>
</body></html>`
	a := testAdapter(t, servePage(page))

	rec := a.Fetch(context.Background(), "someone")
	assert.Equal(t, 2000, rec.Rating)
	assert.Equal(t, provider.Int(2000), rec.MaxRating)
}

func TestFetchRatingOnlyDigitsKept(t *testing.T) {
	page := `<html><body><div class="rating-header"><div class="rating-number"> 1,498 </div></div></body></html>`
	a := testAdapter(t, servePage(page))

	rec := a.Fetch(context.Background(), "someone")
	assert.Equal(t, 1498, rec.Rating)
}

func TestFetchConnectionError(t *testing.T) {
	a := New(resty.New().SetTimeout(time.Second), "http://127.0.0.1:1", nil)
	rec := a.Fetch(context.Background(), "someone")
	assert.Equal(t, provider.StatusError, rec.Status)
	assert.Equal(t, "Connection error", rec.Error)
}
