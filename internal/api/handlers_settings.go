package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/models"
	"github.com/zakariamou/sahha/internal/services"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settingsService.Get()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	var incoming models.Settings
	if err := c.BodyParser(&incoming); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid settings payload")
	}
	settings, err := handler.settingsService.Update(incoming)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

// GetTargets recomputes the target profile from current settings rather than
// serving the stored snapshot.
func (handler *Handler) GetTargets(c *fiber.Ctx) error {
	settings, err := handler.settingsService.Get()
	if err != nil {
		return serviceError(c, err)
	}
	targets := services.ComputeTargets(settings)
	return c.JSON(targets)
}
