package db

import (
	"github.com/zakariamou/sahha/internal/models"
	"gorm.io/gorm"
)

type PlanDayRepository struct {
	database *gorm.DB
}

func NewPlanDayRepository(database *gorm.DB) *PlanDayRepository {
	return &PlanDayRepository{database: database}
}

func (repo *PlanDayRepository) ListAll() ([]models.PlanDay, error) {
	days := make([]models.PlanDay, 0)
	if err := repo.database.Order("date ASC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// ListRange returns days with from <= date <= to. ISO dates sort
// lexicographically, so plain string comparison is enough.
func (repo *PlanDayRepository) ListRange(from, to string) ([]models.PlanDay, error) {
	query := repo.database.Model(&models.PlanDay{})
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	days := make([]models.PlanDay, 0)
	if err := query.Order("date ASC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *PlanDayRepository) FindByDate(date string) (models.PlanDay, bool, error) {
	day := models.PlanDay{}
	result := repo.database.Where("date = ?", date).Limit(1).Find(&day)
	if result.Error != nil {
		return models.PlanDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PlanDay{}, false, nil
	}
	return day, true, nil
}

// ReplaceAll swaps the whole schedule in one transaction, used on plan
// rebuilds.
func (repo *PlanDayRepository) ReplaceAll(days []models.PlanDay) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.PlanDay{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.CreateInBatches(days, 50).Error
	})
}
