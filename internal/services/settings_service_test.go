package services

import (
	"errors"
	"testing"

	"github.com/zakariamou/sahha/internal/models"
)

func newSettingsService(settings *models.Settings) (*SettingsService, *fakeSettingsStore, *fakePlanDayStore, *fakeDailyLogStore) {
	settingsStore := &fakeSettingsStore{settings: settings}
	dayStore := &fakePlanDayStore{}
	logStore := &fakeDailyLogStore{}
	plan := NewPlanService(settingsStore, dayStore, logStore)
	return NewSettingsService(settingsStore, plan), settingsStore, dayStore, logStore
}

func TestSettingsGetMissing(t *testing.T) {
	service, _, _, _ := newSettingsService(nil)
	if _, err := service.Get(); !errors.Is(err, ErrSettingsMissing) {
		t.Fatalf("err = %v, want ErrSettingsMissing", err)
	}
}

func TestSettingsUpdateRecomputesAndRebuilds(t *testing.T) {
	existing := makeSettings()
	existing.ID = 1
	existing.StartDate = testStart
	existing.WorkoutWeekdays = defaultWeekdays()
	existing.SetupCompleted = true
	existing.GroceryBought = map[string]bool{"eggs": true}
	service, settingsStore, dayStore, _ := newSettingsService(&existing)

	incoming := makeSettings()
	incoming.StartDate = testStart
	incoming.WorkoutWeekdays = defaultWeekdays()
	incoming.Profile.WeightKg = 90

	updated, err := service.Update(incoming)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != 1 {
		t.Fatalf("row id changed: %d", updated.ID)
	}
	if !updated.SetupCompleted {
		t.Fatal("update must not reset the setup flag")
	}
	if !updated.GroceryBought["eggs"] {
		t.Fatal("bought map lost when the payload omitted it")
	}
	if updated.TargetsAuto == nil || updated.TargetsAuto.Calories == 0 {
		t.Fatalf("targets not recomputed: %+v", updated.TargetsAuto)
	}
	if len(dayStore.days) != 84 {
		t.Fatalf("plan not rebuilt: %d days", len(dayStore.days))
	}
	if settingsStore.settings.Profile.WeightKg != 90 {
		t.Fatalf("weight not stored: %v", settingsStore.settings.Profile.WeightKg)
	}
}

func TestCompleteSetupMarksDoneAndBuildsPlan(t *testing.T) {
	existing := makeSettings()
	existing.ID = 1
	existing.StartDate = testStart
	existing.WorkoutWeekdays = defaultWeekdays()
	service, settingsStore, dayStore, logStore := newSettingsService(&existing)

	wizard := makeSettings()
	wizard.StartDate = testStart
	wizard.WorkoutWeekdays = defaultWeekdays()

	got, err := service.CompleteSetup(wizard)
	if err != nil {
		t.Fatalf("CompleteSetup: %v", err)
	}
	if !got.SetupCompleted {
		t.Fatal("setup flag not set")
	}
	if got.SchemaVersion != models.CurrentSchemaVersion {
		t.Fatalf("schema version = %d", got.SchemaVersion)
	}
	if len(dayStore.days) != 84 || len(logStore.logs) != 84 {
		t.Fatalf("plan not generated: %d days, %d logs", len(dayStore.days), len(logStore.logs))
	}
	if settingsStore.settings.ID != 1 {
		t.Fatalf("setup must reuse the existing row, got id %d", settingsStore.settings.ID)
	}
}

func TestSetBought(t *testing.T) {
	existing := makeSettings()
	existing.ID = 1
	service, settingsStore, _, _ := newSettingsService(&existing)

	if err := service.SetBought("eggs", true); err != nil {
		t.Fatalf("SetBought: %v", err)
	}
	if !settingsStore.settings.GroceryBought["eggs"] {
		t.Fatal("eggs not marked bought")
	}
	if err := service.SetBought("eggs", false); err != nil {
		t.Fatalf("unset: %v", err)
	}
	if _, ok := settingsStore.settings.GroceryBought["eggs"]; ok {
		t.Fatal("unset must remove the key")
	}
}
