package services

import (
	"testing"

	"github.com/zakariamou/sahha/internal/models"
)

func makePlanDay(t *testing.T, withWorkout bool) models.PlanDay {
	t.Helper()
	weekdays := models.WorkoutWeekdays{}
	if withWorkout {
		weekdays.A = []int{0, 1, 2, 3, 4, 5, 6}
	}
	days, err := BuildPlan(testStart, weekdays, 1, 5, nil)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	return days[0]
}

func TestBuildDailyLogChecksMatchPlan(t *testing.T) {
	day := makePlanDay(t, true)
	log := BuildDailyLog(day)

	if log.Date != day.Date {
		t.Fatalf("log date %s, want %s", log.Date, day.Date)
	}
	// Workout A: 5 warmup + 5 main + 4 cooldown.
	if len(log.WorkoutChecks) != 14 {
		t.Fatalf("workout checks = %d, want 14", len(log.WorkoutChecks))
	}
	if len(log.MealChecks) != len(day.Meals) {
		t.Fatalf("meal checks = %d, want %d", len(log.MealChecks), len(day.Meals))
	}
	if len(log.HabitChecks) != 5 {
		t.Fatalf("habit checks = %d, want 5", len(log.HabitChecks))
	}

	if log.WorkoutChecks[0].StepID != day.Workout.Warmup[0].ID {
		t.Fatalf("first check step %s, want %s", log.WorkoutChecks[0].StepID, day.Workout.Warmup[0].ID)
	}
	for i, c := range log.MealChecks {
		if c.MealID != day.Meals[i].ID {
			t.Fatalf("meal check %d bound to %s, want %s", i, c.MealID, day.Meals[i].ID)
		}
	}
	if log.MealChecks[0].Label != "Breakfast: Eggs + khobz + veg" {
		t.Fatalf("meal label %q", log.MealChecks[0].Label)
	}
	if log.Steps != 0 || log.WaterL != 0 || log.Calories != 0 || log.Strength != nil {
		t.Fatal("numeric fields must start zeroed and strength nil")
	}
}

func TestBuildDailyLogRestDay(t *testing.T) {
	day := makePlanDay(t, false)
	log := BuildDailyLog(day)
	if len(log.WorkoutChecks) != 0 {
		t.Fatalf("rest day got %d workout checks", len(log.WorkoutChecks))
	}
	if len(log.MealChecks) == 0 {
		t.Fatal("rest day still needs meal checks")
	}
}

func TestDayStatus(t *testing.T) {
	if got := DayStatus(nil); got != models.StatusNone {
		t.Fatalf("nil log = %s, want none", got)
	}
	if got := DayStatus(&models.DailyLog{}); got != models.StatusNone {
		t.Fatalf("empty checklist = %s, want none", got)
	}

	day := makePlanDay(t, false)
	log := BuildDailyLog(day)
	if got := DayStatus(&log); got != models.StatusMissed {
		t.Fatalf("untouched log = %s, want missed", got)
	}

	// 5 meals + 5 habits = 10 checks; 9/10 hits the 0.9 completion bar.
	for i := range log.MealChecks {
		log.MealChecks[i].Done = true
	}
	for _, h := range []string{"water", "sleep", "teaNoSugar", "noSoda"} {
		log.HabitChecks[h] = true
	}
	if got := DayStatus(&log); got != models.StatusCompleted {
		t.Fatalf("9/10 = %s, want completed", got)
	}

	log.HabitChecks["noSoda"] = false
	if got := DayStatus(&log); got != models.StatusPartial {
		t.Fatalf("8/10 = %s, want partial", got)
	}
}
