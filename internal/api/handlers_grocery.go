package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/services"
)

// GetGrocery aggregates the plan days in range into one priced shopping list:
// meal lines plus sauce lines, merged per key, scaled down for eat-out days,
// then costed against the price book.
func (handler *Handler) GetGrocery(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	settings, err := handler.settingsService.Get()
	if err != nil {
		return serviceError(c, err)
	}
	days, err := handler.repositories.PlanDays.ListRange(from, to)
	if err != nil {
		return serviceError(c, err)
	}

	meals := services.AggregateMeals(days, settings.GroceryBought)
	sauces := services.AggregateSauces(days, settings.GroceryBought)
	lines := services.MergeLines(meals, sauces)

	factor := services.ServingsScaleFactor(settings.GroceryScale.EatOutDaysPerWeek)
	lines = services.ApplyScale(lines, factor)

	priceByKey, err := handler.repositories.Prices.MapByKey()
	if err != nil {
		return serviceError(c, err)
	}
	summary := services.ComputeCosts(lines, priceByKey)

	multiplier := settings.Pricing.MonthlyMultiplier
	if multiplier <= 0 {
		multiplier = services.DefaultMonthlyMultiplier
	}
	return c.JSON(fiber.Map{
		"lines":           summary.Priced,
		"totalMAD":        summary.Total,
		"missingPrices":   summary.Missing,
		"scaleFactor":     factor,
		"monthlyEstimate": services.MonthlyEstimate(summary.Total, multiplier),
	})
}

type boughtRequest struct {
	Bought bool `json:"bought"`
}

func (handler *Handler) SetGroceryBought(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return apiError(c, fiber.StatusBadRequest, "missing grocery key")
	}
	var req boughtRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid bought payload")
	}
	if err := handler.settingsService.SetBought(key, req.Bought); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"key": key, "bought": req.Bought})
}
