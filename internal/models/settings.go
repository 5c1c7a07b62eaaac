package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalLose   = "lose"
	GoalGain   = "gain"
	GoalRecomp = "recomp"
)

const (
	ActivitySedentary     = "sedentary"
	ActivityLightlyActive = "lightlyActive"
	ActivityActive        = "active"
	ActivityVeryActive    = "veryActive"
)

const (
	DefaultWeeks       = 12
	DefaultMealsPerDay = 5
	CurrentSchemaVersion = 2
)

type Profile struct {
	Gender         string  `json:"gender"`
	Age            int     `json:"age"`
	HeightCm       float64 `json:"heightCm"`
	StartWeightKg  float64 `json:"startWeightKg"`
	WeightKg       float64 `json:"weightKg"`
	TargetWeightKg float64 `json:"targetWeightKg"`
	BodyFatPct     float64 `json:"bodyFatPct,omitempty"`
}

type Goal struct {
	Type           string  `json:"type"`
	TargetWeightKg float64 `json:"targetWeightKg"`
	SpeedKgPerWeek float64 `json:"speedKgPerWeek"`
	AdvancedMacros bool    `json:"advancedMacros"`
}

type Lifestyle struct {
	ActivityLevel string  `json:"activityLevel"`
	JobType       string  `json:"jobType"`
	SleepHours    float64 `json:"sleepHours"`
	Stress        string  `json:"stress"`
	StepsAvg      int     `json:"stepsAvg"`
}

type Training struct {
	HasDumbbells   bool     `json:"hasDumbbells"`
	TimePerSession int      `json:"timePerSession"`
	DaysPerWeek    int      `json:"daysPerWeek"`
	Experience     string   `json:"experience"`
	Injuries       []string `json:"injuries"`
}

type Nutrition struct {
	Budget       string   `json:"budget"`
	MealsPerDay  int      `json:"mealsPerDay"`
	Restrictions string   `json:"restrictions"`
	Dislikes     string   `json:"dislikes"`
	TypicalFoods []string `json:"typicalFoods"`
}

// ManualTargets are the user-editable daily goals shown on the dashboard.
// The computed macro targets live in TargetProfile.
type ManualTargets struct {
	Calories int     `json:"calories"`
	ProteinG int     `json:"proteinG"`
	WaterL   float64 `json:"waterL"`
	Steps    int     `json:"steps"`
	SleepH   float64 `json:"sleepH"`
}

// WorkoutWeekdays maps each workout template to the weekdays it runs on,
// Monday=0 through Sunday=6.
type WorkoutWeekdays struct {
	A []int `json:"A"`
	B []int `json:"B"`
	C []int `json:"C"`
}

type GroceryScale struct {
	EatOutDaysPerWeek int `json:"eatOutDaysPerWeek"`
}

const (
	PricingModeWeekly  = "weekly"
	PricingModeMonthly = "monthly"
)

type PricingSettings struct {
	Mode              string  `json:"mode"`
	MonthlyMultiplier float64 `json:"monthlyMultiplier"`
}

// Settings is the single persisted configuration row for the household.
type Settings struct {
	ID              uint              `gorm:"primaryKey" json:"-"`
	Profile         Profile           `gorm:"serializer:json" json:"profile"`
	Goal            Goal              `gorm:"serializer:json" json:"goal"`
	Lifestyle       Lifestyle         `gorm:"serializer:json" json:"lifestyle"`
	Training        Training          `gorm:"serializer:json" json:"training"`
	Nutrition       Nutrition         `gorm:"serializer:json" json:"nutrition"`
	StartDate       string            `gorm:"not null" json:"startDate"`
	Targets         ManualTargets     `gorm:"serializer:json" json:"targets"`
	TargetsAuto     *TargetProfile    `gorm:"serializer:json" json:"targetsAuto"`
	MealTiming      map[string]string `gorm:"serializer:json" json:"mealTiming"`
	WorkoutWeekdays WorkoutWeekdays   `gorm:"serializer:json" json:"workoutWeekdays"`
	GroceryScale    GroceryScale      `gorm:"serializer:json" json:"groceryScale"`
	GroceryBought   map[string]bool   `gorm:"serializer:json" json:"groceryBought"`
	Pricing         PricingSettings   `gorm:"serializer:json" json:"pricing"`
	Theme           string            `gorm:"not null;default:dark" json:"theme"`
	SchemaVersion   int               `gorm:"not null;default:1" json:"schemaVersion"`
	SetupCompleted  bool              `gorm:"not null;default:false" json:"setupCompleted"`
	CreatedAt       time.Time         `json:"-"`
	UpdatedAt       time.Time         `json:"-"`
}
