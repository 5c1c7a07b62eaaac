package models

import "time"

const (
	StatusNone      = "none"
	StatusMissed    = "missed"
	StatusPartial   = "partial"
	StatusCompleted = "completed"
)

type WorkoutCheck struct {
	ID     string `json:"id"`
	StepID string `json:"stepId"`
	Label  string `json:"label"`
	Done   bool   `json:"done"`
}

type MealCheck struct {
	ID     string `json:"id"`
	MealID string `json:"mealId"`
	Label  string `json:"label"`
	Done   bool   `json:"done"`
}

type StrengthSet struct {
	Label    string  `json:"label"`
	WeightKg float64 `json:"weightKg"`
	Reps     int     `json:"reps"`
}

type StrengthEntry struct {
	Squat StrengthSet `json:"squat"`
	RDL   StrengthSet `json:"rdl"`
	Press StrengthSet `json:"press"`
	Row   StrengthSet `json:"row"`
}

// DailyLog is the trackable checklist derived from a plan day. Check arrays are
// positionally 1:1 with the plan day's workout steps and meals at creation and
// never gain or lose entries on their own.
type DailyLog struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	UID           string          `gorm:"uniqueIndex;not null" json:"id"`
	Date          string          `gorm:"uniqueIndex;not null" json:"date"`
	Notes         string          `json:"notes"`
	WorkoutChecks []WorkoutCheck  `gorm:"serializer:json" json:"workoutChecks"`
	MealChecks    []MealCheck     `gorm:"serializer:json" json:"mealChecks"`
	HabitChecks   map[string]bool `gorm:"serializer:json" json:"habitChecks"`
	Steps         int             `json:"steps"`
	WaterL        float64         `json:"waterL"`
	SleepH        float64         `json:"sleepH"`
	Calories      int             `json:"calories"`
	ProteinG      int             `json:"proteinG"`
	Strength      *StrengthEntry  `gorm:"serializer:json" json:"strength"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}
