package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rgvh/city-explorer-api/internal/models"
)

// GetWeather godoc
// @Summary Daily forecast for a resolved location
// @Tags weather
// @Produce json
// @Param data.id query int true "Location id"
// @Param data.latitude query number true "Latitude"
// @Param data.longitude query number true "Longitude"
// @Success 200 {array} models.Weather
// @Router /weather [get]
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return err
	}

	recs, err := h.resolver.Weather(c.UserContext(), loc)
	if err != nil {
		if noData(err) {
			return c.JSON([]models.Weather{})
		}
		return h.fail(c, err)
	}
	return c.JSON(recs)
}

// GetEvents godoc
// @Summary Upcoming events near a resolved location
// @Tags events
// @Produce json
// @Param data.id query int true "Location id"
// @Param data.latitude query number true "Latitude"
// @Param data.longitude query number true "Longitude"
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return err
	}

	recs, err := h.resolver.Events(c.UserContext(), loc)
	if err != nil {
		if noData(err) {
			return c.JSON([]models.Event{})
		}
		return h.fail(c, err)
	}
	return c.JSON(recs)
}

// GetMovies godoc
// @Summary Films related to a resolved location's city
// @Tags movies
// @Produce json
// @Param data.id query int true "Location id"
// @Param data.formatted_address query string true "Formatted address"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *Handler) GetMovies(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return err
	}

	recs, err := h.resolver.Movies(c.UserContext(), loc)
	if err != nil {
		if noData(err) {
			return c.JSON([]models.Movie{})
		}
		return h.fail(c, err)
	}
	return c.JSON(recs)
}

// GetReviews godoc
// @Summary Business reviews near a resolved location
// @Tags yelp
// @Produce json
// @Param data.id query int true "Location id"
// @Param data.latitude query number true "Latitude"
// @Param data.longitude query number true "Longitude"
// @Success 200 {array} models.Review
// @Router /yelp [get]
func (h *Handler) GetReviews(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return err
	}

	recs, err := h.resolver.Reviews(c.UserContext(), loc)
	if err != nil {
		if noData(err) {
			return c.JSON([]models.Review{})
		}
		return h.fail(c, err)
	}
	return c.JSON(recs)
}

// GetTrails godoc
// @Summary Hiking trails near a resolved location
// @Tags trails
// @Produce json
// @Param data.id query int true "Location id"
// @Param data.latitude query number true "Latitude"
// @Param data.longitude query number true "Longitude"
// @Success 200 {array} models.Trail
// @Router /trails [get]
func (h *Handler) GetTrails(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return err
	}

	recs, err := h.resolver.Trails(c.UserContext(), loc)
	if err != nil {
		if noData(err) {
			return c.JSON([]models.Trail{})
		}
		return h.fail(c, err)
	}
	return c.JSON(recs)
}
