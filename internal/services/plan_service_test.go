package services

import (
	"errors"
	"testing"

	"github.com/zakariamou/sahha/internal/models"
)

func TestPlanServiceRebuildWithoutSettings(t *testing.T) {
	service := NewPlanService(&fakeSettingsStore{}, &fakePlanDayStore{}, &fakeDailyLogStore{})
	if _, err := service.Rebuild(); !errors.Is(err, ErrSettingsMissing) {
		t.Fatalf("err = %v, want ErrSettingsMissing", err)
	}
}

func TestPlanServiceRebuild(t *testing.T) {
	settings := makeSettings()
	settings.StartDate = testStart
	settings.Nutrition.MealsPerDay = 5
	settings.WorkoutWeekdays = defaultWeekdays()
	settingsStore := &fakeSettingsStore{settings: &settings}
	dayStore := &fakePlanDayStore{}
	logStore := &fakeDailyLogStore{}

	service := NewPlanService(settingsStore, dayStore, logStore)
	days, err := service.Rebuild()
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if len(days) != 84 {
		t.Fatalf("days = %d, want 84", len(days))
	}
	if len(logStore.logs) != 84 {
		t.Fatalf("logs = %d, want 84", len(logStore.logs))
	}
	if settingsStore.settings.TargetsAuto == nil || settingsStore.settings.TargetsAuto.Calories != 1722 {
		t.Fatalf("recomputed targets not stored: %+v", settingsStore.settings.TargetsAuto)
	}
	for i, d := range days {
		if logStore.logs[i].Date != d.Date {
			t.Fatalf("log %d date %s, plan date %s", i, logStore.logs[i].Date, d.Date)
		}
	}
}

func TestPlanServiceRebuildPreservesMatchingLogs(t *testing.T) {
	settings := makeSettings()
	settings.StartDate = testStart
	settings.WorkoutWeekdays = defaultWeekdays()
	settingsStore := &fakeSettingsStore{settings: &settings}
	dayStore := &fakePlanDayStore{}
	logStore := &fakeDailyLogStore{
		logs: []models.DailyLog{
			{UID: "keep-me", Date: testStart, Notes: "felt great", Steps: 9000},
			{UID: "drop-me", Date: "2020-01-01", Notes: "ancient"},
		},
	}

	service := NewPlanService(settingsStore, dayStore, logStore)
	if _, err := service.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	var kept *models.DailyLog
	for i := range logStore.logs {
		if logStore.logs[i].Date == testStart {
			kept = &logStore.logs[i]
		}
		if logStore.logs[i].Date == "2020-01-01" {
			t.Fatal("log outside the new plan range must be dropped")
		}
	}
	if kept == nil {
		t.Fatal("log for surviving date is gone")
	}
	if kept.UID != "keep-me" || kept.Notes != "felt great" || kept.Steps != 9000 {
		t.Fatalf("old log values lost: %+v", kept)
	}
}
