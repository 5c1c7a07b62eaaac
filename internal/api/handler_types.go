package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/zakariamou/sahha/internal/db"
	"github.com/zakariamou/sahha/internal/provider/marjane"
	"github.com/zakariamou/sahha/internal/services"
)

type Handler struct {
	db           *gorm.DB
	location     *time.Location
	repositories *db.Repositories

	planService     *services.PlanService
	settingsService *services.SettingsService
	backupService   *services.BackupService
	lookupClient    *marjane.Client
}
