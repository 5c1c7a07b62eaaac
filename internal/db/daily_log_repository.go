package db

import (
	"github.com/zakariamou/sahha/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListAll() ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListRange(from, to string) ([]models.DailyLog, error) {
	query := repo.database.Model(&models.DailyLog{})
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	logs := make([]models.DailyLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByDate(date string) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.Where("date = ?", date).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyLogRepository) ReplaceAll(logs []models.DailyLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.DailyLog{}).Error; err != nil {
			return err
		}
		if len(logs) == 0 {
			return nil
		}
		return tx.CreateInBatches(logs, 50).Error
	})
}
