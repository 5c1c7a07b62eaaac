package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/zakariamou/sahha/internal/models"
)

func newBackupService() (*BackupService, *fakeSettingsStore, *fakePlanDayStore, *fakeDailyLogStore, *fakeMeasurementStore, *fakePriceStore) {
	settings := &fakeSettingsStore{}
	days := &fakePlanDayStore{}
	logs := &fakeDailyLogStore{}
	measurements := &fakeMeasurementStore{}
	prices := &fakePriceStore{}
	return NewBackupService(settings, days, logs, measurements, prices), settings, days, logs, measurements, prices
}

func TestImportRejectsMissingSections(t *testing.T) {
	service, _, _, _, _, _ := newBackupService()

	cases := []string{
		`{}`,
		`{"settings":{},"planDays":[],"logs":[]}`,
		`{"settings":null,"planDays":[],"logs":[],"measurements":[]}`,
		`not json`,
	}
	for _, payload := range cases {
		if err := service.Import([]byte(payload)); !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("payload %q: err = %v, want ErrInvalidBackup", payload, err)
		}
	}
}

func TestImportRejectsBeforeWriting(t *testing.T) {
	service, settings, _, _, _, _ := newBackupService()
	existing := makeSettings()
	existing.ID = 1
	settings.settings = &existing

	if err := service.Import([]byte(`{"settings":{}}`)); !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("err = %v", err)
	}
	if settings.settings.Profile.WeightKg != 95 {
		t.Fatal("failed import must leave existing state untouched")
	}
}

func TestImportMigratesOldDocument(t *testing.T) {
	service, settingsStore, dayStore, _, _, _ := newBackupService()

	// Old-format document: no pricing, no goal bucket, no sauce refs, no meta.
	doc := map[string]any{
		"settings": map[string]any{
			"profile":   map[string]any{"gender": "male", "age": 25, "heightCm": 170, "startWeightKg": 95, "targetWeightKg": 74},
			"startDate": "2026-01-05",
		},
		"planDays": []map[string]any{
			{
				"id":   "day_2026-01-05",
				"date": "2026-01-05",
				"meals": []map[string]any{
					{"id": "meal_2026-01-05_1", "slot": "Breakfast", "templateKey": "breakfast", "title": "Eggs"},
				},
			},
		},
		"logs":         []any{},
		"measurements": []any{},
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := service.Import(payload); err != nil {
		t.Fatalf("Import: %v", err)
	}

	s := settingsStore.settings
	if s.Profile.WeightKg != 95 {
		t.Fatalf("weight not backfilled from start weight: %v", s.Profile.WeightKg)
	}
	if s.Goal.Type != models.GoalLose || s.Goal.SpeedKgPerWeek != 0.5 || s.Goal.TargetWeightKg != 74 {
		t.Fatalf("goal defaults = %+v", s.Goal)
	}
	if s.Pricing.Mode != models.PricingModeWeekly || s.Pricing.MonthlyMultiplier != 4.3 {
		t.Fatalf("pricing defaults = %+v", s.Pricing)
	}
	if s.GroceryBought == nil {
		t.Fatal("groceryBought not initialized")
	}
	if s.TargetsAuto == nil || s.TargetsAuto.Calories == 0 {
		t.Fatalf("auto targets not computed: %+v", s.TargetsAuto)
	}
	if !s.SetupCompleted {
		t.Fatal("pre-wizard installs must not be forced through setup")
	}
	if s.SchemaVersion != models.CurrentSchemaVersion {
		t.Fatalf("schema version = %d", s.SchemaVersion)
	}

	meal := dayStore.days[0].Meals[0]
	if meal.Sauce == nil || meal.Sauce.ID != "yogurtGarlic" {
		t.Fatalf("sauce backfill missing: %+v", meal.Sauce)
	}
}

func TestImportHonorsExplicitSetupFlag(t *testing.T) {
	service, settingsStore, _, _, _, _ := newBackupService()
	payload := []byte(`{
		"settings": {"profile": {"startWeightKg": 95}, "startDate": "2026-01-05"},
		"planDays": [], "logs": [], "measurements": [],
		"meta": {"schemaVersion": 2, "setupCompleted": false}
	}`)
	if err := service.Import(payload); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if settingsStore.settings.SetupCompleted {
		t.Fatal("explicit setupCompleted=false must be kept")
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	service, settingsStore, dayStore, logStore, measurementStore, priceStore := newBackupService()

	settings := makeSettings()
	settings.ID = 1
	settings.StartDate = testStart
	settings.WorkoutWeekdays = defaultWeekdays()
	settings.GroceryBought = map[string]bool{"eggs": true}
	settings.Pricing = models.PricingSettings{Mode: models.PricingModeMonthly, MonthlyMultiplier: 4.3}
	settings.SetupCompleted = true
	settings.SchemaVersion = models.CurrentSchemaVersion
	settingsStore.settings = &settings

	days, err := BuildPlan(testStart, settings.WorkoutWeekdays, 1, 5, nil)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	dayStore.days = days
	logStore.logs = []models.DailyLog{BuildDailyLog(days[0])}
	measurementStore.entries = []models.Measurement{{UID: "m1", Date: testStart, Type: models.MeasurementWeight, Value: 95}}
	priceStore.entries = []models.PriceEntry{{Key: "eggs", UnitPriceMAD: 1.25}}

	exported, err := service.Export(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	payload, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := service.Import(payload); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(dayStore.days) != 7 || len(logStore.logs) != 1 {
		t.Fatalf("roundtrip lost data: %d days, %d logs", len(dayStore.days), len(logStore.logs))
	}
	if !settingsStore.settings.GroceryBought["eggs"] {
		t.Fatal("bought map lost in roundtrip")
	}
	if !settingsStore.settings.SetupCompleted {
		t.Fatal("setup flag lost in roundtrip")
	}
	if len(logStore.logs[0].MealChecks) != len(dayStore.days[0].Meals) {
		t.Fatal("meal checks no longer 1:1 with plan meals")
	}
	if priceStore.entries[0].UnitPriceMAD != 1.25 {
		t.Fatalf("prices lost: %+v", priceStore.entries)
	}
}
