package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rgvh/city-explorer-api/internal/config"
)

func testClient() *Client {
	return New(&config.Config{
		UpstreamTimeout: 2 * time.Second,
		UpstreamRPS:     1000,
		UpstreamBurst:   1000,
		YelpAPIKey:      "test-yelp-key",
	})
}

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "Seattle, WA" {
			t.Errorf("address param = %q", got)
		}
		w.Write([]byte(`{"results":[{
			"formatted_address":"Seattle, WA, USA",
			"geometry":{"location":{"lat":47.6062,"lng":-122.3321}}
		}]}`))
	}))
	defer srv.Close()

	c := testClient()
	c.GeocodeURL = srv.URL

	res, err := c.Geocode(context.Background(), "Seattle, WA")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if res.FormattedAddress != "Seattle, WA, USA" {
		t.Errorf("formatted_address = %q", res.FormattedAddress)
	}
	if res.Geometry == nil || res.Geometry.Location.Lat != 47.6062 {
		t.Errorf("geometry = %+v", res.Geometry)
	}
}

func TestGeocodeEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := testClient()
	c.GeocodeURL = srv.URL

	if _, err := c.Geocode(context.Background(), "xyzzy"); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestForecastNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient()
	c.WeatherURL = srv.URL

	if _, err := c.Forecast(context.Background(), 47.6, -122.3); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestForecastTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := testClient()
	c.WeatherURL = srv.URL

	if _, err := c.Forecast(context.Background(), 47.6, -122.3); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestForecastDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily":{"data":[
			{"summary":"Light rain","time":1717243200},
			{"summary":"Clearing","time":1717329600}
		]}}`))
	}))
	defer srv.Close()

	c := testClient()
	c.WeatherURL = srv.URL

	days, err := c.Forecast(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}
	if len(days) != 2 || days[0].Summary != "Light rain" {
		t.Errorf("unexpected days %+v", days)
	}
}

func TestBusinessesSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-yelp-key" {
			t.Errorf("authorization = %q", got)
		}
		w.Write([]byte(`{"businesses":[{"name":"Pho Plus","rating":4.5}]}`))
	}))
	defer srv.Close()

	c := testClient()
	c.YelpURL = srv.URL

	biz, err := c.Businesses(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("Businesses failed: %v", err)
	}
	if len(biz) != 1 || biz[0].Name != "Pho Plus" {
		t.Errorf("unexpected businesses %+v", biz)
	}
	if biz[0].Rating == nil || *biz[0].Rating != 4.5 {
		t.Errorf("rating = %v", biz[0].Rating)
	}
}

func TestBusinessesOmittedRatingStaysNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"businesses":[{"name":"New Spot"}]}`))
	}))
	defer srv.Close()

	c := testClient()
	c.YelpURL = srv.URL

	biz, err := c.Businesses(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("Businesses failed: %v", err)
	}
	if biz[0].Rating != nil {
		t.Errorf("rating should be nil when omitted, got %v", *biz[0].Rating)
	}
}

func TestTrailsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	c := testClient()
	c.TrailsURL = srv.URL

	if _, err := c.Trails(context.Background(), 47.6, -122.3); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestEventsMissingArrayIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pagination":{"object_count":0}}`))
	}))
	defer srv.Close()

	c := testClient()
	c.EventsURL = srv.URL

	if _, err := c.Events(context.Background(), 47.6, -122.3); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
