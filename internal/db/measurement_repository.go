package db

import (
	"github.com/zakariamou/sahha/internal/models"
	"gorm.io/gorm"
)

type MeasurementRepository struct {
	database *gorm.DB
}

func NewMeasurementRepository(database *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{database: database}
}

func (repo *MeasurementRepository) ListAll() ([]models.Measurement, error) {
	entries := make([]models.Measurement, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MeasurementRepository) Create(entry *models.Measurement) error {
	return repo.database.Create(entry).Error
}

func (repo *MeasurementRepository) ReplaceAll(entries []models.Measurement) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Measurement{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, 100).Error
	})
}
