package services

import (
	"math"
	"strings"

	"github.com/zakariamou/sahha/internal/models"
)

var ActivityMultipliers = map[string]float64{
	models.ActivitySedentary:     1.2,
	models.ActivityLightlyActive: 1.375,
	models.ActivityActive:        1.55,
	models.ActivityVeryActive:    1.725,
}

func BMI(weightKg, heightCm float64) models.BMIResult {
	h := heightCm / 100
	if h <= 0 || weightKg <= 0 {
		return models.BMIResult{}
	}
	value := Round1(weightKg / (h * h))
	category := "Obese"
	switch {
	case value < 18.5:
		category = "Underweight"
	case value < 25:
		category = "Normal"
	case value < 30:
		category = "Overweight"
	}
	return models.BMIResult{Value: value, Category: category}
}

// BMRMifflin computes basal metabolic rate via Mifflin-St Jeor. Returns 0 when
// any required input is missing rather than guessing.
func BMRMifflin(gender string, weightKg, heightCm float64, age int) int {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == models.GenderFemale {
		return int(math.Round(base - 161))
	}
	return int(math.Round(base + 5))
}

func TDEE(bmr int, activityLevel string) int {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return int(math.Round(float64(bmr) * mult))
}

// CalorieDelta is the daily kcal adjustment for a goal and pace. Unknown paces
// within a known goal adjust nothing; recomp and unknown goals use a mild cut.
func CalorieDelta(goal string, speedKgPerWeek float64) int {
	switch goal {
	case models.GoalGain:
		switch speedKgPerWeek {
		case 0.1:
			return 110
		case 0.25:
			return 275
		case 0.5:
			return 550
		}
		return 0
	case models.GoalLose:
		switch speedKgPerWeek {
		case 0.25:
			return -275
		case 0.5:
			return -550
		case 0.75:
			return -825
		case 1.0:
			return -1100
		}
		return 0
	}
	return -275
}

type CalorieTarget struct {
	Calories int
	Floor    int
	Delta    int
	Warning  string
}

// CalorieTargetFromGoal applies the goal delta to TDEE and enforces the safety
// floor (1400 kcal female, 1600 kcal male).
func CalorieTargetFromGoal(goal string, speedKgPerWeek float64, tdeeKcal int, gender string) CalorieTarget {
	if goal == "" {
		goal = models.GoalLose
	}
	delta := CalorieDelta(goal, speedKgPerWeek)
	floor := 1600
	if gender == models.GenderFemale {
		floor = 1400
	}
	calories := tdeeKcal + delta
	if calories < floor {
		calories = floor
	}
	warning := ""
	if goal == models.GoalLose && speedKgPerWeek >= 1.0 {
		warning = "Very aggressive deficit. Expect fatigue/hunger; consider 0.5–0.75 kg/week."
	}
	return CalorieTarget{Calories: calories, Floor: floor, Delta: delta, Warning: warning}
}

// MacroTargets splits calories into protein/fat/carb gram targets, keyed off
// the target weight when set (otherwise current weight). Simple mode tracks
// calories and protein only.
func MacroTargets(calories int, goal string, weightKg, targetWeightKg float64, advanced bool) (proteinG, fatG, carbsG int) {
	baseWeight := weightKg
	if targetWeightKg > 0 {
		baseWeight = targetWeightKg
	}
	proteinPerKg := 1.8
	if goal == models.GoalGain {
		proteinPerKg = 1.6
	}
	proteinG = int(math.Round(Clamp(baseWeight*proteinPerKg, 90, 260)))
	if !advanced {
		return proteinG, 0, 0
	}
	fatG = int(math.Round(Clamp(baseWeight*0.8, 40, 120)))
	carbsCals := math.Max(0, float64(calories)-float64(proteinG)*4-float64(fatG)*9)
	carbsG = int(math.Round(carbsCals / 4))
	return proteinG, fatG, carbsG
}

// ComputeTargets derives the full target profile from settings. Pure and
// idempotent; missing optionals fall back to safe defaults instead of failing.
func ComputeTargets(settings models.Settings) models.TargetProfile {
	profile := settings.Profile
	goal := settings.Goal

	weight := profile.WeightKg
	if weight <= 0 {
		weight = profile.StartWeightKg
	}
	goalType := goal.Type
	if goalType == "" {
		goalType = models.GoalLose
	}
	speed := goal.SpeedKgPerWeek
	if speed == 0 {
		speed = 0.5
	}
	gender := profile.Gender
	if gender == "" {
		gender = models.GenderMale
	}
	targetWeight := goal.TargetWeightKg
	if targetWeight <= 0 {
		targetWeight = profile.TargetWeightKg
	}

	bmi := BMI(weight, profile.HeightCm)
	bmr := BMRMifflin(gender, weight, profile.HeightCm, profile.Age)
	tdeeKcal := TDEE(bmr, settings.Lifestyle.ActivityLevel)
	ct := CalorieTargetFromGoal(goalType, speed, tdeeKcal, gender)
	proteinG, fatG, carbsG := MacroTargets(ct.Calories, goalType, weight, targetWeight, goal.AdvancedMacros)

	return models.TargetProfile{
		BMI:      bmi,
		BMR:      bmr,
		TDEE:     tdeeKcal,
		Calories: ct.Calories,
		ProteinG: proteinG,
		FatG:     fatG,
		CarbsG:   carbsG,
		Delta:    ct.Delta,
		Warning:  ct.Warning,
	}
}
