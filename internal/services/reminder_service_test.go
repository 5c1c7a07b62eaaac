package services

import (
	"testing"

	"github.com/zakariamou/sahha/internal/models"
)

func TestBuildReminderMessage(t *testing.T) {
	settings := makeSettings()
	settings.TargetsAuto = &models.TargetProfile{Calories: 1722}

	days, err := BuildPlan(testStart, defaultWeekdays(), 1, 5, nil)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	// Monday is a B day in the default split.
	got := buildReminderMessage(days[0], settings)
	want := "Sahha today (2026-01-05): Day B — Upper. Calorie target: 1722 kcal."
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	// Wednesday is a rest day; without auto targets the manual ones apply.
	settings.TargetsAuto = nil
	settings.Targets.Calories = 2100
	got = buildReminderMessage(days[2], settings)
	want = "Sahha today (2026-01-07): Rest day. Calorie target: 2100 kcal."
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestReminderDedupsPerDay(t *testing.T) {
	service := &ReminderService{sentDates: make(map[string]bool)}
	if !service.shouldSend("2026-01-05") {
		t.Fatal("first send of the day must pass")
	}
	if service.shouldSend("2026-01-05") {
		t.Fatal("second send of the same day must be suppressed")
	}
	if !service.shouldSend("2026-01-06") {
		t.Fatal("next day must pass again")
	}
}
