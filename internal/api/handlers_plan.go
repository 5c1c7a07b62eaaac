package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) RebuildPlan(c *fiber.Ctx) error {
	days, err := handler.planService.Rebuild()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"days": len(days)})
}

func (handler *Handler) GetPlanRange(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	days, err := handler.repositories.PlanDays.ListRange(from, to)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(days)
}

func (handler *Handler) GetPlanDay(c *fiber.Ctx) error {
	date, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	day, found, err := handler.repositories.PlanDays.FindByDate(date)
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no plan for "+date)
	}
	return c.JSON(day)
}
