package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/models"
	"github.com/zakariamou/sahha/internal/services"
)

func (handler *Handler) GetPricing(c *fiber.Ctx) error {
	settings, err := handler.settingsService.Get()
	if err != nil {
		return serviceError(c, err)
	}
	prices, err := handler.repositories.Prices.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	multiplier := settings.Pricing.MonthlyMultiplier
	if multiplier <= 0 {
		multiplier = services.DefaultMonthlyMultiplier
	}
	mode := settings.Pricing.Mode
	if mode == "" {
		mode = models.PricingModeWeekly
	}
	return c.JSON(fiber.Map{
		"prices":            prices,
		"mode":              mode,
		"monthlyMultiplier": multiplier,
	})
}

type priceUpdate struct {
	Key          string  `json:"key"`
	UnitPriceMAD float64 `json:"unitPriceMAD"`
	ProductName  string  `json:"productName"`
	ProductURL   string  `json:"productUrl"`
}

// UpdatePrices upserts price book entries by key.
func (handler *Handler) UpdatePrices(c *fiber.Ctx) error {
	var updates []priceUpdate
	if err := c.BodyParser(&updates); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid prices payload")
	}
	for _, update := range updates {
		key := strings.TrimSpace(update.Key)
		if key == "" {
			return apiError(c, fiber.StatusBadRequest, "price entry without a key")
		}
		entry := models.PriceEntry{
			Key:          key,
			UnitPriceMAD: update.UnitPriceMAD,
			ProductName:  update.ProductName,
			ProductURL:   update.ProductURL,
		}
		if err := handler.repositories.Prices.Upsert(&entry); err != nil {
			return serviceError(c, err)
		}
	}
	prices, err := handler.repositories.Prices.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"prices": prices})
}
