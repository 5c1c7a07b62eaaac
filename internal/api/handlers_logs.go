package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/models"
	"github.com/zakariamou/sahha/internal/services"
)

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	date, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry, found, err := handler.repositories.DailyLogs.FindByDate(date)
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no log for "+date)
	}
	return c.JSON(entry)
}

// UpdateLog overwrites the editable parts of a day's log. Row identity and
// date stay server-side so the checks stay tied to their plan day.
func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	date, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	existing, found, err := handler.repositories.DailyLogs.FindByDate(date)
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no log for "+date)
	}

	var incoming models.DailyLog
	if err := c.BodyParser(&incoming); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log payload")
	}
	incoming.ID = existing.ID
	incoming.UID = existing.UID
	incoming.Date = existing.Date
	incoming.CreatedAt = existing.CreatedAt
	if err := handler.repositories.DailyLogs.Save(&incoming); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(incoming)
}

func (handler *Handler) GetLogStatus(c *fiber.Ctx) error {
	date, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry, found, err := handler.repositories.DailyLogs.FindByDate(date)
	if err != nil {
		return serviceError(c, err)
	}
	var status string
	if found {
		status = services.DayStatus(&entry)
	} else {
		status = services.DayStatus(nil)
	}
	return c.JSON(fiber.Map{"date": date, "status": status})
}
