// Package upstream holds the thin per-provider HTTP gateways. Each
// gateway builds the provider query, performs one bounded GET, and
// validates that the expected top-level result array is present and
// non-empty before handing the decoded payload to the resolver.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rgvh/city-explorer-api/internal/config"
	"github.com/rgvh/city-explorer-api/internal/logger"
)

var (
	// ErrUnavailable covers transport failures, timeouts and non-2xx
	// responses. Worth retrying later.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrNoData means the provider answered but had no results. Rendered
	// to the user as an empty result set, not as an error.
	ErrNoData = errors.New("no upstream data")

	// ErrMalformed means the provider returned a shape that cannot be
	// mapped to a record.
	ErrMalformed = errors.New("malformed upstream data")
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "city_explorer_upstream_requests_total",
		Help: "Total number of upstream provider requests",
	},
	[]string{"provider", "outcome"},
)

// Client is the shared HTTP gateway to all providers. One instance is
// constructed at startup and injected into the resolver.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	cfg     *config.Config
	log     *zap.SugaredLogger

	// Base URLs, overridable in tests.
	GeocodeURL string
	WeatherURL string
	EventsURL  string
	MoviesURL  string
	YelpURL    string
	TrailsURL  string
}

func New(cfg *config.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.UpstreamTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), cfg.UpstreamBurst),
		cfg:     cfg,
		log:     logger.GetLogger("upstream"),

		GeocodeURL: "https://maps.googleapis.com/maps/api/geocode/json",
		WeatherURL: "https://api.darksky.net/forecast",
		EventsURL:  "https://www.eventbriteapi.com/v3/events/search/",
		MoviesURL:  "https://api.themoviedb.org/3/search/movie",
		YelpURL:    "https://api.yelp.com/v3/businesses/search",
		TrailsURL:  "https://www.hikingproject.com/data/get-trails",
	}
}

// getJSON performs one rate-limited GET against a provider and decodes
// the response body into out.
func (c *Client) getJSON(ctx context.Context, provider, url string, header http.Header, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		requestsTotal.WithLabelValues(provider, "throttled").Inc()
		return fmt.Errorf("%s: rate limit wait: %v: %w", provider, err, ErrUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", provider, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(provider, "error").Inc()
		c.log.Warnw("upstream request failed", "provider", provider, "error", err)
		return fmt.Errorf("%s: %v: %w", provider, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		requestsTotal.WithLabelValues(provider, "error").Inc()
		c.log.Warnw("upstream returned non-OK status", "provider", provider, "status", resp.StatusCode)
		return fmt.Errorf("%s: status %d: %w", provider, resp.StatusCode, ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		requestsTotal.WithLabelValues(provider, "malformed").Inc()
		c.log.Warnw("upstream response undecodable", "provider", provider, "error", err)
		return fmt.Errorf("%s: decode: %v: %w", provider, err, ErrMalformed)
	}

	requestsTotal.WithLabelValues(provider, "ok").Inc()
	return nil
}
