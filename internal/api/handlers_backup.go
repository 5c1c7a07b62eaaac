package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/services"
)

func (handler *Handler) ExportBackup(c *fiber.Ctx) error {
	doc, err := handler.backupService.Export(time.Now().In(handler.location))
	if err != nil {
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sahha-backup.json"`)
	return c.JSON(doc)
}

func (handler *Handler) ImportBackup(c *fiber.Ctx) error {
	if err := handler.backupService.Import(c.Body()); err != nil {
		if errors.Is(err, services.ErrInvalidBackup) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
