package models

type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// Macros is a calorie/protein/fat/carb bundle. Values are per day for targets
// and day totals, per serving for catalog meals.
type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	FatG     float64 `json:"fatG"`
	CarbsG   float64 `json:"carbsG"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		ProteinG: m.ProteinG + other.ProteinG,
		FatG:     m.FatG + other.FatG,
		CarbsG:   m.CarbsG + other.CarbsG,
	}
}

// TargetProfile is derived from Settings on demand and snapshotted into plan
// days; it is never the source of truth.
type TargetProfile struct {
	BMI      BMIResult `json:"bmi"`
	BMR      int       `json:"bmr"`
	TDEE     int       `json:"tdee"`
	Calories int       `json:"calories"`
	ProteinG int       `json:"proteinG"`
	FatG     int       `json:"fatG"`
	CarbsG   int       `json:"carbsG"`
	Delta    int       `json:"delta"`
	Warning  string    `json:"warning,omitempty"`
}
