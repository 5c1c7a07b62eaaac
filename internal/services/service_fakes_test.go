package services

import "github.com/zakariamou/sahha/internal/models"

type fakeSettingsStore struct {
	settings *models.Settings
}

func (s *fakeSettingsStore) Get() (models.Settings, bool, error) {
	if s.settings == nil {
		return models.Settings{}, false, nil
	}
	return *s.settings, true, nil
}

func (s *fakeSettingsStore) Save(settings *models.Settings) error {
	if settings.ID == 0 {
		settings.ID = 1
	}
	clone := *settings
	s.settings = &clone
	return nil
}

type fakePlanDayStore struct {
	days []models.PlanDay
}

func (s *fakePlanDayStore) ListAll() ([]models.PlanDay, error) {
	return append([]models.PlanDay(nil), s.days...), nil
}

func (s *fakePlanDayStore) ReplaceAll(days []models.PlanDay) error {
	s.days = append([]models.PlanDay(nil), days...)
	return nil
}

type fakeDailyLogStore struct {
	logs []models.DailyLog
}

func (s *fakeDailyLogStore) ListAll() ([]models.DailyLog, error) {
	return append([]models.DailyLog(nil), s.logs...), nil
}

func (s *fakeDailyLogStore) ReplaceAll(logs []models.DailyLog) error {
	s.logs = append([]models.DailyLog(nil), logs...)
	return nil
}

type fakeMeasurementStore struct {
	entries []models.Measurement
}

func (s *fakeMeasurementStore) ListAll() ([]models.Measurement, error) {
	return append([]models.Measurement(nil), s.entries...), nil
}

func (s *fakeMeasurementStore) Create(entry *models.Measurement) error {
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeMeasurementStore) ReplaceAll(entries []models.Measurement) error {
	s.entries = append([]models.Measurement(nil), entries...)
	return nil
}

type fakePriceStore struct {
	entries []models.PriceEntry
}

func (s *fakePriceStore) ListAll() ([]models.PriceEntry, error) {
	return append([]models.PriceEntry(nil), s.entries...), nil
}

func (s *fakePriceStore) ReplaceAll(entries []models.PriceEntry) error {
	s.entries = append([]models.PriceEntry(nil), entries...)
	return nil
}
