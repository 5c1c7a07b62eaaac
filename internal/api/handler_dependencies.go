package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/zakariamou/sahha/internal/db"
	"github.com/zakariamou/sahha/internal/provider/marjane"
	"github.com/zakariamou/sahha/internal/services"
)

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	handler := &Handler{
		db:           database,
		location:     location,
		repositories: db.NewRepositories(database),
		lookupClient: &marjane.Client{},
	}
	handler.planService = services.NewPlanService(
		handler.repositories.Settings,
		handler.repositories.PlanDays,
		handler.repositories.DailyLogs,
	)
	handler.settingsService = services.NewSettingsService(handler.repositories.Settings, handler.planService)
	handler.backupService = services.NewBackupService(
		handler.repositories.Settings,
		handler.repositories.PlanDays,
		handler.repositories.DailyLogs,
		handler.repositories.Measurements,
		handler.repositories.Prices,
	)
	return handler
}
