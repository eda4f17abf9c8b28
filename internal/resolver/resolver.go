// Package resolver implements the cache-or-fetch orchestration: try
// the store, check freshness, and on a miss or stale group fetch from
// the category's provider, normalize, persist, and serve.
package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/rgvh/city-explorer-api/internal/category"
	"github.com/rgvh/city-explorer-api/internal/logger"
	"github.com/rgvh/city-explorer-api/internal/models"
	"github.com/rgvh/city-explorer-api/internal/normalize"
	"github.com/rgvh/city-explorer-api/internal/upstream"
)

var cacheRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "city_explorer_cache_requests_total",
		Help: "Cache lookups by category and result (hit, miss, stale, error)",
	},
	[]string{"category", "result"},
)

// Store is the persistence surface the resolver needs. *store.Store
// satisfies it; tests substitute fakes.
type Store interface {
	FindLocation(ctx context.Context, query string) (*models.Location, error)
	InsertLocation(ctx context.Context, loc *models.Location) error

	FindWeather(ctx context.Context, locationID uint) ([]models.Weather, error)
	InsertWeather(ctx context.Context, rec *models.Weather) error
	FindEvents(ctx context.Context, locationID uint) ([]models.Event, error)
	InsertEvent(ctx context.Context, rec *models.Event) error
	FindMovies(ctx context.Context, locationID uint) ([]models.Movie, error)
	InsertMovie(ctx context.Context, rec *models.Movie) error
	FindReviews(ctx context.Context, locationID uint) ([]models.Review, error)
	InsertReview(ctx context.Context, rec *models.Review) error
	FindTrails(ctx context.Context, locationID uint) ([]models.Trail, error)
	InsertTrail(ctx context.Context, rec *models.Trail) error

	DeleteFor(ctx context.Context, c category.Category, locationID uint) error
}

// Gateways is the upstream surface the resolver needs. *upstream.Client
// satisfies it.
type Gateways interface {
	Geocode(ctx context.Context, query string) (*upstream.GeocodeResult, error)
	Forecast(ctx context.Context, lat, lon float64) ([]upstream.ForecastDay, error)
	Events(ctx context.Context, lat, lon float64) ([]upstream.EventItem, error)
	Movies(ctx context.Context, query string) ([]upstream.MovieItem, error)
	Businesses(ctx context.Context, lat, lon float64) ([]upstream.BusinessItem, error)
	Trails(ctx context.Context, lat, lon float64) ([]upstream.TrailItem, error)
}

type Resolver struct {
	store Store
	gw    Gateways
	now   func() time.Time
	log   *zap.SugaredLogger
}

func New(store Store, gw Gateways) *Resolver {
	return &Resolver{
		store: store,
		gw:    gw,
		now:   time.Now,
		log:   logger.GetLogger("resolver"),
	}
}

// Location resolves a free-text search string to a geocoded location.
// Locations never expire: a stored row is always served as-is.
func (r *Resolver) Location(ctx context.Context, query string) (*models.Location, error) {
	stored, err := r.store.FindLocation(ctx, query)
	switch {
	case err != nil:
		cacheRequests.WithLabelValues(category.Location.String(), "error").Inc()
		r.log.Warnw("location cache read failed, serving upstream only",
			"search_query", query, "error", err)
	case stored != nil:
		cacheRequests.WithLabelValues(category.Location.String(), "hit").Inc()
		return stored, nil
	default:
		cacheRequests.WithLabelValues(category.Location.String(), "miss").Inc()
	}

	res, err := r.gw.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}
	loc, err := normalize.Location(query, res)
	if err != nil {
		return nil, err
	}
	if err := r.store.InsertLocation(ctx, &loc); err != nil {
		// The caller still gets the geocode result, just without a
		// cached row behind it.
		r.log.Warnw("failed to persist location", "search_query", query, "error", err)
	}
	return &loc, nil
}

func (r *Resolver) Weather(ctx context.Context, loc *models.Location) ([]models.Weather, error) {
	return resolve[models.Weather](ctx, r, category.Weather, loc,
		r.store.FindWeather, r.store.InsertWeather,
		func(ctx context.Context) ([]models.Weather, error) {
			days, err := r.gw.Forecast(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				return nil, err
			}
			return normalizeBatch(r, category.Weather, days, normalize.Weather)
		})
}

func (r *Resolver) Events(ctx context.Context, loc *models.Location) ([]models.Event, error) {
	return resolve[models.Event](ctx, r, category.Events, loc,
		r.store.FindEvents, r.store.InsertEvent,
		func(ctx context.Context) ([]models.Event, error) {
			items, err := r.gw.Events(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				return nil, err
			}
			return normalizeBatch(r, category.Events, items, normalize.Event)
		})
}

func (r *Resolver) Movies(ctx context.Context, loc *models.Location) ([]models.Movie, error) {
	// The movie search keys off the city, the first segment of the
	// formatted address.
	city := strings.TrimSpace(strings.SplitN(loc.FormattedAddress, ",", 2)[0])

	return resolve[models.Movie](ctx, r, category.Movies, loc,
		r.store.FindMovies, r.store.InsertMovie,
		func(ctx context.Context) ([]models.Movie, error) {
			items, err := r.gw.Movies(ctx, city)
			if err != nil {
				return nil, err
			}
			return normalizeBatch(r, category.Movies, items, normalize.Movie)
		})
}

func (r *Resolver) Reviews(ctx context.Context, loc *models.Location) ([]models.Review, error) {
	return resolve[models.Review](ctx, r, category.Reviews, loc,
		r.store.FindReviews, r.store.InsertReview,
		func(ctx context.Context) ([]models.Review, error) {
			items, err := r.gw.Businesses(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				return nil, err
			}
			return normalizeBatch(r, category.Reviews, items, normalize.Review)
		})
}

func (r *Resolver) Trails(ctx context.Context, loc *models.Location) ([]models.Trail, error) {
	return resolve[models.Trail](ctx, r, category.Trails, loc,
		r.store.FindTrails, r.store.InsertTrail,
		func(ctx context.Context) ([]models.Trail, error) {
			items, err := r.gw.Trails(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				return nil, err
			}
			return normalizeBatch(r, category.Trails, items, normalize.Trail)
		})
}

// record constrains a category record pointer: stampable with the
// owning location and batch timestamp, and able to report when it was
// created.
type record[R any] interface {
	*R
	Stamp(locationID uint, at time.Time)
	Created() time.Time
}

// resolve is the per-request state machine shared by every record
// category: check cache, serve when fresh, otherwise clear and refetch.
func resolve[R any, P record[R]](
	ctx context.Context,
	r *Resolver,
	c category.Category,
	loc *models.Location,
	find func(context.Context, uint) ([]R, error),
	insert func(context.Context, *R) error,
	fetch func(context.Context) ([]R, error),
) ([]R, error) {
	stored, err := find(ctx, loc.ID)
	switch {
	case err != nil:
		// A broken cache must not take the feature down; fall through to
		// the provider.
		cacheRequests.WithLabelValues(c.String(), "error").Inc()
		r.log.Warnw("cache read failed, serving upstream only",
			"category", c.String(), "location_id", loc.ID, "error", err)
	case len(stored) > 0:
		// All records of a batch share one timestamp, so the first row
		// speaks for the group.
		if c.Fresh(P(&stored[0]).Created(), r.now()) {
			cacheRequests.WithLabelValues(c.String(), "hit").Inc()
			return clip(c, stored), nil
		}
		cacheRequests.WithLabelValues(c.String(), "stale").Inc()
		if err := r.store.DeleteFor(ctx, c, loc.ID); err != nil {
			r.log.Warnw("failed to clear stale records",
				"category", c.String(), "location_id", loc.ID, "error", err)
		}
	default:
		cacheRequests.WithLabelValues(c.String(), "miss").Inc()
	}

	recs, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	at := r.now()
	for i := range recs {
		P(&recs[i]).Stamp(loc.ID, at)
		if err := insert(ctx, &recs[i]); err != nil {
			// Persistence failure degrades to log-only; the caller still
			// gets the batch.
			r.log.Warnw("failed to persist record",
				"category", c.String(), "location_id", loc.ID, "error", err)
		}
	}

	return clip(c, recs), nil
}

// normalizeBatch maps provider items to records, dropping items the
// normalizer rejects. Only a batch with no mappable item at all is an
// error.
func normalizeBatch[T any, R any](r *Resolver, c category.Category, items []T, f func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	var lastErr error
	for _, item := range items {
		rec, err := f(item)
		if err != nil {
			lastErr = err
			r.log.Errorw("dropping unmappable upstream item",
				"category", c.String(), "payload", fmt.Sprintf("%+v", item), "error", err)
			continue
		}
		out = append(out, rec)
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func clip[R any](c category.Category, recs []R) []R {
	if max := c.Cap(); max > 0 && len(recs) > max {
		return recs[:max]
	}
	return recs
}
