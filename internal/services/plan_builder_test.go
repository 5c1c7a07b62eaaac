package services

import (
	"reflect"
	"testing"

	"github.com/zakariamou/sahha/internal/models"
)

// 2026-01-05 is a Monday.
const testStart = "2026-01-05"

func defaultWeekdays() models.WorkoutWeekdays {
	return models.WorkoutWeekdays{A: []int{1, 4}, B: []int{0, 3}, C: []int{5}}
}

func TestBuildPlanShape(t *testing.T) {
	targets := &models.TargetProfile{Calories: 1722, ProteinG: 133, FatG: 59, CarbsG: 165}
	days, err := BuildPlan(testStart, defaultWeekdays(), 12, 5, targets)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(days) != 84 {
		t.Fatalf("len = %d, want 84", len(days))
	}
	if days[0].Date != testStart || days[83].Date != "2026-03-29" {
		t.Fatalf("date range %s..%s", days[0].Date, days[83].Date)
	}
	if days[0].WeekIndex != 1 || days[0].DayIndex != 1 {
		t.Fatalf("first day indices %d/%d", days[0].WeekIndex, days[0].DayIndex)
	}
	if days[7].WeekIndex != 2 || days[7].DayIndex != 8 {
		t.Fatalf("second week indices %d/%d", days[7].WeekIndex, days[7].DayIndex)
	}
	for _, d := range days {
		if len(d.Meals) != 5 {
			t.Fatalf("%s has %d meals", d.Date, len(d.Meals))
		}
		if d.Targets == nil || d.Targets.Calories != 1722 {
			t.Fatalf("%s missing targets snapshot", d.Date)
		}
	}
}

func TestBuildPlanWorkoutAssignment(t *testing.T) {
	days, err := BuildPlan(testStart, defaultWeekdays(), 1, 5, nil)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	// Monday=B, Tuesday=A, Thursday=B, Friday=A, Saturday=C, rest free.
	want := []string{"B", "A", "", "B", "A", "C", ""}
	for i, d := range days {
		if d.WorkoutType != want[i] {
			t.Fatalf("day %d (%s): workout %q, want %q", i, d.Date, d.WorkoutType, want[i])
		}
		if want[i] == "" && d.Workout != nil {
			t.Fatalf("rest day %s has a workout snapshot", d.Date)
		}
		if want[i] != "" && (d.Workout == nil || d.Workout.Type != want[i]) {
			t.Fatalf("day %s missing workout snapshot for %q", d.Date, want[i])
		}
	}
}

func TestBuildPlanWorkoutPrecedence(t *testing.T) {
	// A and B both claim Monday; C claims everything. A must win Monday and C
	// must only fill unclaimed days.
	weekdays := models.WorkoutWeekdays{A: []int{0}, B: []int{0}, C: []int{0, 1, 2, 3, 4, 5, 6}}
	days, err := BuildPlan(testStart, weekdays, 1, 5, nil)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if days[0].WorkoutType != models.WorkoutA {
		t.Fatalf("Monday workout = %q, want A", days[0].WorkoutType)
	}
	for _, d := range days[1:] {
		if d.WorkoutType != models.WorkoutC {
			t.Fatalf("%s workout = %q, want C", d.Date, d.WorkoutType)
		}
	}
}

func TestBuildPlanDeterministic(t *testing.T) {
	targets := &models.TargetProfile{Calories: 1722, ProteinG: 133, FatG: 59, CarbsG: 165}
	a, err := BuildPlan(testStart, defaultWeekdays(), 2, 5, targets)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	b, err := BuildPlan(testStart, defaultWeekdays(), 2, 5, targets)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different plans")
	}
	if a[0].UID != "day_"+testStart {
		t.Fatalf("day UID = %q", a[0].UID)
	}
	if a[0].Meals[0].ID != "meal_"+testStart+"_1" {
		t.Fatalf("meal ID = %q", a[0].Meals[0].ID)
	}
}

func TestBuildPlanSauceRecommendations(t *testing.T) {
	days, err := BuildPlan(testStart, defaultWeekdays(), 1, 5, nil)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	want := map[string]string{
		"Breakfast": "yogurtGarlic",
		"Snack 1":   "",
		"Lunch":     "lightChermoula",
		"Snack 2":   "yogurtGarlic",
		"Dinner":    "tomatoOnion",
	}
	for _, m := range days[0].Meals {
		id := ""
		if m.Sauce != nil {
			id = m.Sauce.ID
		}
		if id != want[m.Slot] {
			t.Fatalf("%s sauce = %q, want %q", m.Slot, id, want[m.Slot])
		}
	}
}

func TestBuildPlanBadStartDate(t *testing.T) {
	if _, err := BuildPlan("05/01/2026", defaultWeekdays(), 1, 5, nil); err == nil {
		t.Fatal("expected error for non-ISO start date")
	}
}
