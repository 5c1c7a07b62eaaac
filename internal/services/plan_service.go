package services

import (
	"errors"
	"fmt"

	"github.com/zakariamou/sahha/internal/models"
)

var ErrSettingsMissing = errors.New("settings not configured")

type SettingsStore interface {
	Get() (models.Settings, bool, error)
	Save(*models.Settings) error
}

type PlanDayStore interface {
	ListAll() ([]models.PlanDay, error)
	ReplaceAll([]models.PlanDay) error
}

type DailyLogStore interface {
	ListAll() ([]models.DailyLog, error)
	ReplaceAll([]models.DailyLog) error
}

// PlanService regenerates the schedule from current settings while keeping
// whatever the user already logged.
type PlanService struct {
	settings SettingsStore
	days     PlanDayStore
	logs     DailyLogStore
}

func NewPlanService(settings SettingsStore, days PlanDayStore, logs DailyLogStore) *PlanService {
	return &PlanService{settings: settings, days: days, logs: logs}
}

// Rebuild recomputes targets, regenerates every plan day and its stub log,
// and swaps both in. Existing logs win for any date that survives the
// rebuild, so checked boxes and notes are never lost. Measurements are not
// touched.
func (service *PlanService) Rebuild() ([]models.PlanDay, error) {
	settings, found, err := service.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return nil, ErrSettingsMissing
	}

	targets := ComputeTargets(settings)
	settings.TargetsAuto = &targets
	if err := service.settings.Save(&settings); err != nil {
		return nil, fmt.Errorf("save recomputed targets: %w", err)
	}

	mealsPerDay := settings.Nutrition.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = models.DefaultMealsPerDay
	}
	days, err := BuildPlan(settings.StartDate, settings.WorkoutWeekdays, models.DefaultWeeks, mealsPerDay, &targets)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}

	oldLogs, err := service.logs.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load logs: %w", err)
	}
	oldByDate := make(map[string]models.DailyLog, len(oldLogs))
	for _, l := range oldLogs {
		oldByDate[l.Date] = l
	}

	newLogs := make([]models.DailyLog, 0, len(days))
	for _, day := range days {
		if old, ok := oldByDate[day.Date]; ok {
			newLogs = append(newLogs, old)
			continue
		}
		newLogs = append(newLogs, BuildDailyLog(day))
	}

	if err := service.days.ReplaceAll(days); err != nil {
		return nil, fmt.Errorf("replace plan days: %w", err)
	}
	if err := service.logs.ReplaceAll(newLogs); err != nil {
		return nil, fmt.Errorf("replace logs: %w", err)
	}
	return days, nil
}
