package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/services"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	settings, err := handler.settingsService.Get()
	if err != nil {
		return serviceError(c, err)
	}
	logs, err := handler.repositories.DailyLogs.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	measurements, err := handler.repositories.Measurements.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.BuildStatsOverview(settings, logs, measurements))
}
