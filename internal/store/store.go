// Package store owns all persistence. It is the only component that
// talks to the database; resolvers treat it as a cache that may fail.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rgvh/city-explorer-api/internal/category"
	"github.com/rgvh/city-explorer-api/internal/database"
	"github.com/rgvh/city-explorer-api/internal/logger"
	"github.com/rgvh/city-explorer-api/internal/models"
)

// ErrUnavailable wraps any backing-store failure. Callers degrade:
// read failures become cache misses, write failures are logged and
// swallowed.
var ErrUnavailable = errors.New("store unavailable")

type Store struct {
	db  *database.DB
	log *zap.SugaredLogger
}

func New(db *database.DB) *Store {
	return &Store{db: db, log: logger.GetLogger("store")}
}

func (s *Store) unavailable(op string, err error) error {
	s.log.Errorw("store operation failed", "op", op, "error", err)
	return fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
}

// FindLocation looks a location up by its search string. Returns
// (nil, nil) when no row exists.
func (s *Store) FindLocation(ctx context.Context, query string) (*models.Location, error) {
	var loc models.Location
	err := s.db.WithContext(ctx).Where("search_query = ?", query).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.unavailable("find location", err)
	}
	return &loc, nil
}

// InsertLocation stores a new location and fills in its generated id.
// When a concurrent request inserted the same search string first, the
// unique constraint fires and the winner's row is read back instead;
// the caller cannot tell the difference and should not care.
func (s *Store) InsertLocation(ctx context.Context, loc *models.Location) error {
	err := s.db.WithContext(ctx).Create(loc).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		s.log.Debugw("location insert lost a race, reading winner back",
			"search_query", loc.SearchQuery)
		var winner models.Location
		if err := s.db.WithContext(ctx).
			Where("search_query = ?", loc.SearchQuery).
			First(&winner).Error; err != nil {
			return s.unavailable("read back location", err)
		}
		*loc = winner
		return nil
	}
	return s.unavailable("insert location", err)
}

// findRecords loads all rows of one category table for a location,
// in insertion order.
func findRecords[R any](ctx context.Context, s *Store, op string, locationID uint) ([]R, error) {
	var out []R
	if err := s.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, s.unavailable(op, err)
	}
	return out, nil
}

func insertRecord[R any](ctx context.Context, s *Store, op string, rec *R) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return s.unavailable(op, err)
	}
	return nil
}

func (s *Store) FindWeather(ctx context.Context, locationID uint) ([]models.Weather, error) {
	return findRecords[models.Weather](ctx, s, "find weather", locationID)
}

func (s *Store) InsertWeather(ctx context.Context, rec *models.Weather) error {
	return insertRecord(ctx, s, "insert weather", rec)
}

func (s *Store) FindEvents(ctx context.Context, locationID uint) ([]models.Event, error) {
	return findRecords[models.Event](ctx, s, "find events", locationID)
}

func (s *Store) InsertEvent(ctx context.Context, rec *models.Event) error {
	return insertRecord(ctx, s, "insert event", rec)
}

func (s *Store) FindMovies(ctx context.Context, locationID uint) ([]models.Movie, error) {
	return findRecords[models.Movie](ctx, s, "find movies", locationID)
}

func (s *Store) InsertMovie(ctx context.Context, rec *models.Movie) error {
	return insertRecord(ctx, s, "insert movie", rec)
}

func (s *Store) FindReviews(ctx context.Context, locationID uint) ([]models.Review, error) {
	return findRecords[models.Review](ctx, s, "find reviews", locationID)
}

func (s *Store) InsertReview(ctx context.Context, rec *models.Review) error {
	return insertRecord(ctx, s, "insert review", rec)
}

func (s *Store) FindTrails(ctx context.Context, locationID uint) ([]models.Trail, error) {
	return findRecords[models.Trail](ctx, s, "find trails", locationID)
}

func (s *Store) InsertTrail(ctx context.Context, rec *models.Trail) error {
	return insertRecord(ctx, s, "insert trail", rec)
}

// DeleteFor removes every stored record of one category for one
// location. Deletion is wholesale; partial staleness does not exist.
func (s *Store) DeleteFor(ctx context.Context, c category.Category, locationID uint) error {
	m := recordModel(c)
	if m == nil {
		return fmt.Errorf("category %s has no record table", c)
	}
	if err := s.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Delete(m).Error; err != nil {
		return s.unavailable("delete "+c.String(), err)
	}
	return nil
}

// recordModel maps a category to its gorm model prototype. Location is
// excluded on purpose: location rows are never deleted.
func recordModel(c category.Category) any {
	switch c {
	case category.Weather:
		return &models.Weather{}
	case category.Events:
		return &models.Event{}
	case category.Movies:
		return &models.Movie{}
	case category.Reviews:
		return &models.Review{}
	case category.Trails:
		return &models.Trail{}
	default:
		return nil
	}
}
