package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zakariamou/sahha/internal/catalog"
	"github.com/zakariamou/sahha/internal/models"
)

var ErrInvalidBackup = errors.New("invalid backup")

type PriceStore interface {
	ListAll() ([]models.PriceEntry, error)
	ReplaceAll([]models.PriceEntry) error
}

type BackupMeta struct {
	CreatedAt      string `json:"createdAt,omitempty"`
	SchemaVersion  int    `json:"schemaVersion"`
	SetupCompleted *bool  `json:"setupCompleted,omitempty"`
}

// BackupDocument is the portable snapshot of the entire household state.
type BackupDocument struct {
	Settings     models.Settings      `json:"settings"`
	PlanDays     []models.PlanDay     `json:"planDays"`
	Logs         []models.DailyLog    `json:"logs"`
	Measurements []models.Measurement `json:"measurements"`
	Pricing      []models.PriceEntry  `json:"pricing"`
	Meta         BackupMeta           `json:"meta"`
}

type BackupService struct {
	settings     SettingsStore
	days         PlanDayStore
	logs         DailyLogStore
	measurements MeasurementStore
	prices       PriceStore
}

func NewBackupService(settings SettingsStore, days PlanDayStore, logs DailyLogStore, measurements MeasurementStore, prices PriceStore) *BackupService {
	return &BackupService{settings: settings, days: days, logs: logs, measurements: measurements, prices: prices}
}

func (service *BackupService) Export(now time.Time) (BackupDocument, error) {
	settings, found, err := service.settings.Get()
	if err != nil {
		return BackupDocument{}, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return BackupDocument{}, ErrSettingsMissing
	}
	days, err := service.days.ListAll()
	if err != nil {
		return BackupDocument{}, fmt.Errorf("load plan days: %w", err)
	}
	logs, err := service.logs.ListAll()
	if err != nil {
		return BackupDocument{}, fmt.Errorf("load logs: %w", err)
	}
	measurements, err := service.measurements.ListAll()
	if err != nil {
		return BackupDocument{}, fmt.Errorf("load measurements: %w", err)
	}
	prices, err := service.prices.ListAll()
	if err != nil {
		return BackupDocument{}, fmt.Errorf("load prices: %w", err)
	}

	setup := settings.SetupCompleted
	return BackupDocument{
		Settings:     settings,
		PlanDays:     days,
		Logs:         logs,
		Measurements: measurements,
		Pricing:      prices,
		Meta: BackupMeta{
			CreatedAt:      now.UTC().Format(time.RFC3339),
			SchemaVersion:  settings.SchemaVersion,
			SetupCompleted: &setup,
		},
	}, nil
}

// rawBackup mirrors the required top-level sections so a missing key can be
// told apart from an empty one.
type rawBackup struct {
	Settings     json.RawMessage `json:"settings"`
	PlanDays     json.RawMessage `json:"planDays"`
	Logs         json.RawMessage `json:"logs"`
	Measurements json.RawMessage `json:"measurements"`
}

// Import replaces the entire state with a backup document. Structural
// problems fail hard before anything is written; old-format documents are
// migrated to the current schema on the way in.
func (service *BackupService) Import(data []byte) error {
	raw := rawBackup{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	for name, section := range map[string]json.RawMessage{
		"settings":     raw.Settings,
		"planDays":     raw.PlanDays,
		"logs":         raw.Logs,
		"measurements": raw.Measurements,
	} {
		if len(section) == 0 || string(section) == "null" {
			return fmt.Errorf("%w: missing %s", ErrInvalidBackup, name)
		}
	}

	doc := BackupDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	MigrateDocument(&doc)

	// Overwrite the existing settings row instead of stacking a second one.
	if existing, found, err := service.settings.Get(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	} else if found {
		doc.Settings.ID = existing.ID
	} else {
		doc.Settings.ID = 0
	}

	if err := service.settings.Save(&doc.Settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := service.days.ReplaceAll(doc.PlanDays); err != nil {
		return fmt.Errorf("replace plan days: %w", err)
	}
	if err := service.logs.ReplaceAll(doc.Logs); err != nil {
		return fmt.Errorf("replace logs: %w", err)
	}
	if err := service.measurements.ReplaceAll(doc.Measurements); err != nil {
		return fmt.Errorf("replace measurements: %w", err)
	}
	if err := service.prices.ReplaceAll(doc.Pricing); err != nil {
		return fmt.Errorf("replace prices: %w", err)
	}
	return nil
}

// MigrateDocument upgrades an imported document in place to the current
// schema: missing settings buckets get defaults, targets are recomputed when
// absent, historical plan meals gain their sauce recommendation. Checklist
// arrays are never touched, so they stay 1:1 with their plan days.
func MigrateDocument(doc *BackupDocument) {
	settings := &doc.Settings

	if settings.Profile.WeightKg == 0 {
		settings.Profile.WeightKg = settings.Profile.StartWeightKg
	}
	if (settings.Goal == models.Goal{}) {
		settings.Goal = models.Goal{
			Type:           models.GoalLose,
			TargetWeightKg: settings.Profile.TargetWeightKg,
			SpeedKgPerWeek: 0.5,
		}
	}
	if (settings.Lifestyle == models.Lifestyle{}) {
		settings.Lifestyle = models.Lifestyle{
			ActivityLevel: models.ActivitySedentary,
			JobType:       "desk",
			SleepHours:    7,
			Stress:        "medium",
		}
	}
	if settings.Training.TimePerSession == 0 && settings.Training.DaysPerWeek == 0 {
		settings.Training = models.Training{
			HasDumbbells:   true,
			TimePerSession: 45,
			DaysPerWeek:    4,
			Experience:     "beginner",
			Injuries:       []string{},
		}
	}
	if settings.Nutrition.MealsPerDay == 0 {
		settings.Nutrition = models.Nutrition{
			Budget:       "low",
			MealsPerDay:  models.DefaultMealsPerDay,
			Restrictions: "none",
			TypicalFoods: []string{},
		}
	}
	if settings.GroceryBought == nil {
		settings.GroceryBought = map[string]bool{}
	}
	if settings.Pricing.Mode == "" {
		settings.Pricing.Mode = models.PricingModeWeekly
	}
	if settings.Pricing.MonthlyMultiplier <= 0 {
		settings.Pricing.MonthlyMultiplier = DefaultMonthlyMultiplier
	}
	if settings.TargetsAuto == nil {
		targets := ComputeTargets(*settings)
		settings.TargetsAuto = &targets
	}

	// Existing installs predate the wizard; never force them through it.
	if doc.Meta.SetupCompleted != nil {
		settings.SetupCompleted = *doc.Meta.SetupCompleted
	} else {
		settings.SetupCompleted = true
	}

	settings.SchemaVersion = models.CurrentSchemaVersion
	doc.Meta.SchemaVersion = models.CurrentSchemaVersion

	for i := range doc.PlanDays {
		for j := range doc.PlanDays[i].Meals {
			meal := &doc.PlanDays[i].Meals[j]
			if meal.TemplateKey == "" || meal.Sauce != nil {
				continue
			}
			if sauce, ok := catalog.SauceForTemplate(meal.TemplateKey); ok {
				meal.Sauce = sauce.Ref()
			}
		}
	}
}
