package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rgvh/city-explorer-api/internal/logger"
	"github.com/rgvh/city-explorer-api/internal/models"
	"github.com/rgvh/city-explorer-api/internal/upstream"
)

// PlaceResolver is the orchestration surface the route layer calls
// into. *resolver.Resolver satisfies it.
type PlaceResolver interface {
	Location(ctx context.Context, query string) (*models.Location, error)
	Weather(ctx context.Context, loc *models.Location) ([]models.Weather, error)
	Events(ctx context.Context, loc *models.Location) ([]models.Event, error)
	Movies(ctx context.Context, loc *models.Location) ([]models.Movie, error)
	Reviews(ctx context.Context, loc *models.Location) ([]models.Review, error)
	Trails(ctx context.Context, loc *models.Location) ([]models.Trail, error)
}

type Handler struct {
	resolver PlaceResolver
	log      *zap.SugaredLogger
}

func New(r PlaceResolver) *Handler {
	return &Handler{resolver: r, log: logger.GetLogger("handlers")}
}

// SetupRoutes registers the six data routes.
func SetupRoutes(router fiber.Router, r PlaceResolver) {
	h := New(r)

	router.Get("/location", h.GetLocation)
	router.Get("/weather", h.GetWeather)
	router.Get("/events", h.GetEvents)
	router.Get("/movies", h.GetMovies)
	router.Get("/yelp", h.GetReviews)
	router.Get("/trails", h.GetTrails)
}

// locationFromQuery reconstructs the location the client previously
// resolved via /location. data.id is mandatory; the coordinate and
// address fields are whatever the category's provider needs.
func locationFromQuery(c *fiber.Ctx) (*models.Location, error) {
	id, err := strconv.ParseUint(c.Query("data.id"), 10, 32)
	if err != nil || id == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "data.id is required")
	}

	lat, _ := strconv.ParseFloat(c.Query("data.latitude"), 64)
	lon, _ := strconv.ParseFloat(c.Query("data.longitude"), 64)

	return &models.Location{
		ID:               uint(id),
		Latitude:         lat,
		Longitude:        lon,
		FormattedAddress: c.Query("data.formatted_address"),
	}, nil
}

// fail renders the generic 500. Internal detail goes to the log only,
// never into the response body.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	h.log.Errorw("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Sorry, something went wrong",
	})
}

// noData reports whether the only problem was an empty provider result,
// which the API contract renders as an empty array with HTTP 200.
func noData(err error) bool {
	return errors.Is(err, upstream.ErrNoData)
}
