package models

import "time"

const (
	WorkoutA = "A"
	WorkoutB = "B"
	WorkoutC = "C"
)

// Recipe units as they appear in the meal catalog. Grams and milliliters are
// normalized to purchase units (kg/L) during grocery aggregation.
const (
	UnitGrams       = "g"
	UnitMilliliters = "ml"
	UnitPieces      = "pcs"
	UnitLoaf        = "loaf"
	UnitCan         = "can"
	UnitGeneric     = "unit"
)

type Ingredient struct {
	GroceryKey string  `json:"groceryKey"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
}

// DisplayItem is a human-facing portion row. The grocery fields are only
// populated on legacy plan days imported from the old document format, where
// items doubled as rough shopping quantities.
type DisplayItem struct {
	Name       string  `json:"name"`
	Portion    string  `json:"portion"`
	Grams      float64 `json:"grams,omitempty"`
	GroceryKey string  `json:"groceryKey,omitempty"`
	Qty        float64 `json:"qty,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// MealDefinition is an immutable catalog entry. Add-ons share the shape but are
// only ever merged into a chosen meal, never scheduled standalone.
type MealDefinition struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Tags        []string      `json:"tags"`
	Macros      Macros        `json:"macros"`
	Ingredients []Ingredient  `json:"ingredients"`
	Display     []DisplayItem `json:"display"`
	TemplateKey string        `json:"templateKey"`
}

// SauceRef is the informational sauce recommendation attached to a plan meal.
// Sauce macros are never counted toward day totals.
type SauceRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PortionRule string `json:"portionRule"`
	LowCalNote  string `json:"lowCalNote"`
}

// PlanMeal is a resolved meal instance inside a plan day, snapshotted from the
// catalog so later catalog edits never alter historical days.
type PlanMeal struct {
	ID          string        `json:"id"`
	Slot        string        `json:"slot"`
	TemplateKey string        `json:"templateKey"`
	Title       string        `json:"title"`
	Items       []DisplayItem `json:"items"`
	Ingredients []Ingredient  `json:"ingredients"`
	Macros      Macros        `json:"macros"`
	Sauce       *SauceRef     `json:"sauce"`
}

type WorkoutStep struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Workout struct {
	Type        string        `json:"type"`
	Title       string        `json:"title"`
	Warmup      []WorkoutStep `json:"warmup"`
	Main        []WorkoutStep `json:"main"`
	Cooldown    []WorkoutStep `json:"cooldown"`
	Progression []string      `json:"progression"`
}

// PlanDay is one calendar day of the generated schedule. Dates are stored as
// ISO strings so range queries sort lexicographically and survive timezone
// changes untouched.
type PlanDay struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	UID         string         `gorm:"uniqueIndex;not null" json:"id"`
	Date        string         `gorm:"uniqueIndex;not null" json:"date"`
	WeekIndex   int            `gorm:"not null" json:"weekIndex"`
	DayIndex    int            `gorm:"not null" json:"dayIndex"`
	WorkoutType string         `json:"workoutType,omitempty"`
	Workout     *Workout       `gorm:"serializer:json" json:"workout"`
	Meals       []PlanMeal     `gorm:"serializer:json" json:"meals"`
	DayMacros   Macros         `gorm:"serializer:json" json:"dayMacros"`
	Targets     *TargetProfile `gorm:"serializer:json" json:"targets"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}
