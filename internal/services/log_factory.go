package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zakariamou/sahha/internal/catalog"
	"github.com/zakariamou/sahha/internal/models"
)

// BuildDailyLog creates the empty checklist for a plan day: one check per
// workout step (warmup, main, cooldown), one per meal, all habits unchecked.
// The check arrays stay 1:1 with the plan content they were built from.
func BuildDailyLog(day models.PlanDay) models.DailyLog {
	log := models.DailyLog{
		UID:         uuid.NewString(),
		Date:        day.Date,
		HabitChecks: make(map[string]bool, len(catalog.Habits)),
	}

	if day.Workout != nil {
		steps := make([]models.WorkoutStep, 0, len(day.Workout.Warmup)+len(day.Workout.Main)+len(day.Workout.Cooldown))
		steps = append(steps, day.Workout.Warmup...)
		steps = append(steps, day.Workout.Main...)
		steps = append(steps, day.Workout.Cooldown...)
		for _, s := range steps {
			log.WorkoutChecks = append(log.WorkoutChecks, models.WorkoutCheck{
				ID:     uuid.NewString(),
				StepID: s.ID,
				Label:  s.Label,
			})
		}
	}

	for _, meal := range day.Meals {
		log.MealChecks = append(log.MealChecks, models.MealCheck{
			ID:     uuid.NewString(),
			MealID: meal.ID,
			Label:  fmt.Sprintf("%s: %s", meal.Slot, meal.Title),
		})
	}

	for _, h := range catalog.Habits {
		log.HabitChecks[h.Key] = false
	}
	return log
}

// DayStatus classifies a day from its checklist completion. A day with no
// checklist at all reads as none, not missed.
func DayStatus(log *models.DailyLog) string {
	if log == nil {
		return models.StatusNone
	}
	total := len(log.WorkoutChecks) + len(log.MealChecks) + len(log.HabitChecks)
	if total == 0 {
		return models.StatusNone
	}
	done := 0
	for _, c := range log.WorkoutChecks {
		if c.Done {
			done++
		}
	}
	for _, c := range log.MealChecks {
		if c.Done {
			done++
		}
	}
	for _, checked := range log.HabitChecks {
		if checked {
			done++
		}
	}
	switch {
	case done == 0:
		return models.StatusMissed
	case float64(done) >= float64(total)*0.9:
		return models.StatusCompleted
	default:
		return models.StatusPartial
	}
}

// DefaultStrengthEntry seeds the strength tracker labels with zero loads.
func DefaultStrengthEntry() *models.StrengthEntry {
	return &models.StrengthEntry{
		Squat: models.StrengthSet{Label: "Goblet squat"},
		RDL:   models.StrengthSet{Label: "DB RDL"},
		Press: models.StrengthSet{Label: "Shoulder press"},
		Row:   models.StrengthSet{Label: "DB row"},
	}
}
