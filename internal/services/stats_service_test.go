package services

import (
	"testing"

	"github.com/zakariamou/sahha/internal/models"
)

func logWithDone(meals, mealsDone, habits, habitsDone int) models.DailyLog {
	l := models.DailyLog{HabitChecks: map[string]bool{}}
	for i := 0; i < meals; i++ {
		l.MealChecks = append(l.MealChecks, models.MealCheck{Done: i < mealsDone})
	}
	for i := 0; i < habits; i++ {
		l.HabitChecks[string(rune('a'+i))] = i < habitsDone
	}
	return l
}

func TestAdherenceScore(t *testing.T) {
	if got := AdherenceScore(nil); got.Score != 0 || got.Label != "" {
		t.Fatalf("empty logs = %+v", got)
	}

	if got := AdherenceScore([]models.DailyLog{logWithDone(5, 5, 5, 4)}); got.Score != 90 || got.Label != "Strong" {
		t.Fatalf("9/10 = %+v, want 90 Strong", got)
	}
	if got := AdherenceScore([]models.DailyLog{logWithDone(5, 4, 5, 3)}); got.Score != 70 || got.Label != "Okay" {
		t.Fatalf("7/10 = %+v, want 70 Okay", got)
	}
	if got := AdherenceScore([]models.DailyLog{logWithDone(5, 2, 5, 1)}); got.Score != 30 || got.Label != "Low" {
		t.Fatalf("3/10 = %+v, want 30 Low", got)
	}
}

func TestAdherenceScoreUsesLast14Logs(t *testing.T) {
	logs := make([]models.DailyLog, 0, 20)
	// 6 fully-done logs that must fall outside the window, then 14 empty ones.
	for i := 0; i < 6; i++ {
		logs = append(logs, logWithDone(5, 5, 0, 0))
	}
	for i := 0; i < 14; i++ {
		logs = append(logs, logWithDone(5, 0, 0, 0))
	}
	if got := AdherenceScore(logs); got.Score != 0 || got.Label != "Low" {
		t.Fatalf("window leak: %+v, want 0 Low", got)
	}
}

func TestExpectedWeightSeries(t *testing.T) {
	dates := []string{"2026-01-05", "2026-01-12", "2026-01-19"}
	lose := ExpectedWeightSeries(95, "2026-01-05", dates, models.Goal{Type: models.GoalLose, SpeedKgPerWeek: 0.5})
	want := []float64{95, 94.5, 94}
	for i, p := range lose {
		if p.Value != want[i] {
			t.Fatalf("lose[%d] = %v, want %v", i, p.Value, want[i])
		}
	}

	gain := ExpectedWeightSeries(70, "2026-01-05", []string{"2026-01-12"}, models.Goal{Type: models.GoalGain, SpeedKgPerWeek: 0.25})
	if gain[0].Value != 70.3 {
		t.Fatalf("gain = %v, want 70.3", gain[0].Value)
	}

	recomp := ExpectedWeightSeries(95, "2026-01-05", []string{"2026-01-12"}, models.Goal{Type: models.GoalRecomp, SpeedKgPerWeek: 0.5})
	if recomp[0].Value != 94.8 {
		t.Fatalf("recomp = %v, want 94.8 (half pace)", recomp[0].Value)
	}
}

func TestMovingAverage(t *testing.T) {
	points := []WeightPoint{
		{Date: "2026-01-05", Value: 95},
		{Date: "2026-01-12", Value: 94},
		{Date: "2026-01-26", Value: 93},
	}
	avg := MovingAverage(points, 7)
	if avg[0].Value != 95 {
		t.Fatalf("first avg = %v, want 95", avg[0].Value)
	}
	// Jan 12 window reaches back to Jan 5 inclusive.
	if avg[1].Value != 94.5 {
		t.Fatalf("second avg = %v, want 94.5", avg[1].Value)
	}
	// Jan 26 window excludes both earlier points.
	if avg[2].Value != 93 {
		t.Fatalf("third avg = %v, want 93", avg[2].Value)
	}
}

func TestPlateauSuggestion(t *testing.T) {
	flat := []WeightPoint{
		{Date: "2026-01-05", Value: 90},
		{Date: "2026-01-10", Value: 90.1},
		{Date: "2026-01-15", Value: 89.9},
		{Date: "2026-01-20", Value: 90},
	}
	if got := PlateauSuggestion(flat, models.Goal{Type: models.GoalLose}); got == "" {
		t.Fatal("flat three weeks should flag a plateau")
	}
	if got := PlateauSuggestion(flat, models.Goal{Type: models.GoalGain}); got != "" {
		t.Fatalf("gain goal should never flag, got %q", got)
	}

	dropping := []WeightPoint{
		{Date: "2026-01-05", Value: 92},
		{Date: "2026-01-10", Value: 91.5},
		{Date: "2026-01-15", Value: 91},
		{Date: "2026-01-20", Value: 90.5},
	}
	if got := PlateauSuggestion(dropping, models.Goal{Type: models.GoalLose}); got != "" {
		t.Fatalf("steady loss should not flag, got %q", got)
	}

	if got := PlateauSuggestion(flat[:3], models.Goal{Type: models.GoalLose}); got != "" {
		t.Fatalf("too few samples should not flag, got %q", got)
	}
}

func TestBuildStatsOverview(t *testing.T) {
	settings := makeSettings()
	settings.StartDate = "2026-01-05"
	measurements := []models.Measurement{
		{Date: "2026-01-12", Type: models.MeasurementWeight, Value: 94.4},
		{Date: "2026-01-05", Type: models.MeasurementWeight, Value: 95},
		{Date: "2026-01-08", Type: models.MeasurementWaist, Value: 102},
	}
	overview := BuildStatsOverview(settings, nil, measurements)

	if len(overview.Weights) != 2 {
		t.Fatalf("weights = %d, want 2 (waist excluded)", len(overview.Weights))
	}
	if overview.Weights[0].Date != "2026-01-05" {
		t.Fatalf("weights not sorted: %+v", overview.Weights)
	}
	if len(overview.Expected) != 2 || overview.Expected[1].Value != 94.5 {
		t.Fatalf("expected series = %+v", overview.Expected)
	}
	if len(overview.MovingAvg) != 2 {
		t.Fatalf("moving avg = %+v", overview.MovingAvg)
	}
	if overview.Plateau != "" {
		t.Fatalf("no plateau expected with 2 samples, got %q", overview.Plateau)
	}
}
