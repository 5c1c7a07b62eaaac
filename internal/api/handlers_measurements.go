package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zakariamou/sahha/internal/models"
	"github.com/zakariamou/sahha/internal/services"
)

func (handler *Handler) GetMeasurements(c *fiber.Ctx) error {
	entries, err := handler.repositories.Measurements.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entries)
}

type measurementRequest struct {
	Date  string  `json:"date"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

func (handler *Handler) CreateMeasurement(c *fiber.Ctx) error {
	var req measurementRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid measurement payload")
	}
	if _, err := services.ParseDay(req.Date); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	if req.Value <= 0 {
		return apiError(c, fiber.StatusBadRequest, "value must be positive")
	}
	if req.Type == "" {
		req.Type = models.MeasurementWeight
	}
	entry := models.Measurement{
		UID:   uuid.NewString(),
		Date:  req.Date,
		Type:  req.Type,
		Value: req.Value,
	}
	if err := handler.repositories.Measurements.Create(&entry); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
