package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zakariamou/sahha/internal/models"
)

type MeasurementStore interface {
	ListAll() ([]models.Measurement, error)
	Create(*models.Measurement) error
	ReplaceAll([]models.Measurement) error
}

// DefaultSettings is the first-run profile the setup wizard later overwrites.
func DefaultSettings(startDate string) models.Settings {
	return models.Settings{
		Profile: models.Profile{
			Gender:         models.GenderMale,
			Age:            25,
			HeightCm:       170,
			StartWeightKg:  95,
			WeightKg:       95,
			TargetWeightKg: 74,
		},
		Goal: models.Goal{
			Type:           models.GoalLose,
			TargetWeightKg: 74,
			SpeedKgPerWeek: 0.5,
		},
		Lifestyle: models.Lifestyle{
			ActivityLevel: models.ActivitySedentary,
			JobType:       "desk",
			SleepHours:    7,
			Stress:        "medium",
		},
		Training: models.Training{
			HasDumbbells:   true,
			TimePerSession: 45,
			DaysPerWeek:    4,
			Experience:     "beginner",
			Injuries:       []string{},
		},
		Nutrition: models.Nutrition{
			Budget:       "low",
			MealsPerDay:  models.DefaultMealsPerDay,
			Restrictions: "none",
			TypicalFoods: []string{},
		},
		StartDate: startDate,
		Targets: models.ManualTargets{
			Calories: 2100,
			ProteinG: 150,
			WaterL:   2.5,
			Steps:    6000,
			SleepH:   7.5,
		},
		MealTiming: map[string]string{
			"breakfast": "09:00",
			"snack1":    "11:30",
			"lunch":     "14:30",
			"snack2":    "17:30",
			"dinner":    "20:30",
		},
		// A Tue+Fri, B Mon+Thu, C Sat.
		WorkoutWeekdays: models.WorkoutWeekdays{A: []int{1, 4}, B: []int{0, 3}, C: []int{5}},
		GroceryBought:   map[string]bool{},
		Pricing: models.PricingSettings{
			Mode:              models.PricingModeWeekly,
			MonthlyMultiplier: DefaultMonthlyMultiplier,
		},
		Theme:         "dark",
		SchemaVersion: models.CurrentSchemaVersion,
	}
}

// BootstrapService creates the initial database state on first run: default
// settings with computed targets, a 12-week plan with stub logs, and the
// start-weight measurement. The setup flag stays false so the wizard still
// greets the user.
type BootstrapService struct {
	settings     SettingsStore
	days         PlanDayStore
	logs         DailyLogStore
	measurements MeasurementStore
}

func NewBootstrapService(settings SettingsStore, days PlanDayStore, logs DailyLogStore, measurements MeasurementStore) *BootstrapService {
	return &BootstrapService{settings: settings, days: days, logs: logs, measurements: measurements}
}

func (service *BootstrapService) EnsureBootstrapped(now time.Time) error {
	_, found, err := service.settings.Get()
	if err != nil {
		return fmt.Errorf("check settings: %w", err)
	}
	if found {
		return nil
	}

	settings := DefaultSettings(FormatDay(now))
	targets := ComputeTargets(settings)
	settings.TargetsAuto = &targets
	if err := service.settings.Save(&settings); err != nil {
		return fmt.Errorf("save default settings: %w", err)
	}

	days, err := BuildPlan(settings.StartDate, settings.WorkoutWeekdays, models.DefaultWeeks, settings.Nutrition.MealsPerDay, &targets)
	if err != nil {
		return fmt.Errorf("build initial plan: %w", err)
	}
	if err := service.days.ReplaceAll(days); err != nil {
		return fmt.Errorf("store initial plan: %w", err)
	}

	logs := make([]models.DailyLog, 0, len(days))
	for _, day := range days {
		logs = append(logs, BuildDailyLog(day))
	}
	if err := service.logs.ReplaceAll(logs); err != nil {
		return fmt.Errorf("store initial logs: %w", err)
	}

	start := models.Measurement{
		UID:   uuid.NewString(),
		Date:  settings.StartDate,
		Type:  models.MeasurementWeight,
		Value: settings.Profile.StartWeightKg,
	}
	if err := service.measurements.Create(&start); err != nil {
		return fmt.Errorf("seed start weight: %w", err)
	}
	return nil
}
