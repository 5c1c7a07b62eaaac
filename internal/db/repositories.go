package db

import "gorm.io/gorm"

type Repositories struct {
	Settings     *SettingsRepository
	PlanDays     *PlanDayRepository
	DailyLogs    *DailyLogRepository
	Measurements *MeasurementRepository
	Prices       *PriceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Settings:     NewSettingsRepository(database),
		PlanDays:     NewPlanDayRepository(database),
		DailyLogs:    NewDailyLogRepository(database),
		Measurements: NewMeasurementRepository(database),
		Prices:       NewPriceRepository(database),
	}
}
