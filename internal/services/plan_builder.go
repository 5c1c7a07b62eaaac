package services

import (
	"fmt"

	"github.com/zakariamou/sahha/internal/catalog"
	"github.com/zakariamou/sahha/internal/models"
)

func containsWeekday(days []int, weekday int) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// workoutTypeForWeekday resolves the scheduled template. A beats B when both
// claim a weekday; C only fills days neither A nor B claims.
func workoutTypeForWeekday(weekdays models.WorkoutWeekdays, weekday int) string {
	switch {
	case containsWeekday(weekdays.A, weekday):
		return models.WorkoutA
	case containsWeekday(weekdays.B, weekday):
		return models.WorkoutB
	case containsWeekday(weekdays.C, weekday):
		return models.WorkoutC
	}
	return ""
}

// BuildPlan generates weeks*7 consecutive days starting at startDate. The
// builder is fully deterministic: the same inputs always produce the same
// days, including IDs, which derive from the date and slot position.
func BuildPlan(startDate string, weekdays models.WorkoutWeekdays, weeks, mealsPerDay int, targets *models.TargetProfile) ([]models.PlanDay, error) {
	if weeks <= 0 {
		weeks = models.DefaultWeeks
	}
	if mealsPerDay <= 0 {
		mealsPerDay = models.DefaultMealsPerDay
	}
	start, err := ParseDay(startDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	totalDays := weeks * 7
	days := make([]models.PlanDay, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		date := start.AddDate(0, 0, i)
		iso := FormatDay(date)
		workoutType := workoutTypeForWeekday(weekdays, WeekdayIndex(date))

		picked := SelectMealsForDay(mealsPerDay, i, targets)
		meals := make([]models.PlanMeal, 0, len(picked))
		for pos, sm := range picked {
			meal := models.PlanMeal{
				ID:          fmt.Sprintf("meal_%s_%d", iso, pos+1),
				Slot:        sm.Slot,
				TemplateKey: sm.Meal.TemplateKey,
				Title:       sm.Meal.Name,
				Items:       sm.Meal.Display,
				Ingredients: sm.Meal.Ingredients,
				Macros:      sm.Meal.Macros,
			}
			if sauce, ok := catalog.SauceForTemplate(sm.Meal.TemplateKey); ok {
				meal.Sauce = sauce.Ref()
			}
			meals = append(meals, meal)
		}

		var dayMacros models.Macros
		for _, m := range meals {
			dayMacros = dayMacros.Add(m.Macros)
		}

		day := models.PlanDay{
			UID:         "day_" + iso,
			Date:        iso,
			WeekIndex:   i/7 + 1,
			DayIndex:    i + 1,
			WorkoutType: workoutType,
			Workout:     catalog.BuildWorkout(workoutType),
			Meals:       meals,
			DayMacros:   dayMacros,
		}
		if targets != nil {
			snapshot := *targets
			day.Targets = &snapshot
		}
		days = append(days, day)
	}
	return days, nil
}
