package db

import (
	"github.com/zakariamou/sahha/internal/models"
	"gorm.io/gorm"
)

type PriceRepository struct {
	database *gorm.DB
}

func NewPriceRepository(database *gorm.DB) *PriceRepository {
	return &PriceRepository{database: database}
}

func (repo *PriceRepository) ListAll() ([]models.PriceEntry, error) {
	entries := make([]models.PriceEntry, 0)
	if err := repo.database.Order("key ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *PriceRepository) MapByKey() (map[string]models.PriceEntry, error) {
	entries, err := repo.ListAll()
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]models.PriceEntry, len(entries))
	for _, entry := range entries {
		byKey[entry.Key] = entry
	}
	return byKey, nil
}

// Upsert writes the price for a key, replacing any existing entry.
func (repo *PriceRepository) Upsert(entry *models.PriceEntry) error {
	existing := models.PriceEntry{}
	result := repo.database.Where("key = ?", entry.Key).Limit(1).Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}
	return repo.database.Save(entry).Error
}

func (repo *PriceRepository) ReplaceAll(entries []models.PriceEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.PriceEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, 100).Error
	})
}
