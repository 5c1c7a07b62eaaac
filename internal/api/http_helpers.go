package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrSettingsMissing) {
		return apiError(c, fiber.StatusConflict, "settings not configured")
	}
	return apiError(c, fiber.StatusInternalServerError, err.Error())
}

// parseDayParam validates the :date path segment as an ISO calendar day.
func parseDayParam(c *fiber.Ctx) (string, error) {
	raw := c.Params("date")
	if _, err := services.ParseDay(raw); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return raw, nil
}

// parseRangeQuery reads optional from/to query params. Empty values mean an
// unbounded side.
func parseRangeQuery(c *fiber.Ctx) (string, string, error) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" {
		if _, err := services.ParseDay(from); err != nil {
			return "", "", fmt.Errorf("invalid from %q, want YYYY-MM-DD", from)
		}
	}
	if to != "" {
		if _, err := services.ParseDay(to); err != nil {
			return "", "", fmt.Errorf("invalid to %q, want YYYY-MM-DD", to)
		}
	}
	return from, to, nil
}
