package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/models"
)

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	settings, found, err := handler.repositories.Settings.Get()
	if err != nil {
		return serviceError(c, err)
	}
	completed := found && settings.SetupCompleted
	return c.JSON(fiber.Map{"setupCompleted": completed})
}

// CompleteSetup takes the wizard's full settings payload, marks setup done,
// and generates the first plan.
func (handler *Handler) CompleteSetup(c *fiber.Ctx) error {
	var incoming models.Settings
	if err := c.BodyParser(&incoming); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid settings payload")
	}
	settings, err := handler.settingsService.CompleteSetup(incoming)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}
