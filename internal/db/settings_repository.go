package db

import (
	"github.com/zakariamou/sahha/internal/models"
	"gorm.io/gorm"
)

// SettingsRepository manages the single configuration row.
type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Get() (models.Settings, bool, error) {
	settings := models.Settings{}
	result := repo.database.Order("id ASC").Limit(1).Find(&settings)
	if result.Error != nil {
		return models.Settings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Settings{}, false, nil
	}
	return settings, true, nil
}

func (repo *SettingsRepository) Save(settings *models.Settings) error {
	return repo.database.Save(settings).Error
}
