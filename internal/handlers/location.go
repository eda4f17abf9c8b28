package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetLocation godoc
// @Summary Resolve a place search to a geocoded location
// @Tags location
// @Produce json
// @Param data query string true "Free-text place string"
// @Success 200 {object} models.Location
// @Router /location [get]
func (h *Handler) GetLocation(c *fiber.Ctx) error {
	query := c.Query("data")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "data is required")
	}

	loc, err := h.resolver.Location(c.UserContext(), query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(loc)
}
