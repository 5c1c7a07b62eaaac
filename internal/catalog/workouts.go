package catalog

import "github.com/zakariamou/sahha/internal/models"

// Shared warmup, cooldown, and progression notes used by every workout day.
var (
	WorkoutWarmup = []models.WorkoutStep{
		{ID: "wu1", Label: "Jumping jacks — 1 min"},
		{ID: "wu2", Label: "Arm circles — 30 sec"},
		{ID: "wu3", Label: "Hip circles — 30 sec"},
		{ID: "wu4", Label: "Bodyweight squats — 15 reps"},
		{ID: "wu5", Label: "Shoulder rolls + deep breathing — 60 sec"},
	}

	WorkoutCooldown = []models.WorkoutStep{
		{ID: "cd1", Label: "Hip flexor stretch — 45 sec/side"},
		{ID: "cd2", Label: "Hamstring stretch — 45 sec/side"},
		{ID: "cd3", Label: "Chest opener — 45 sec"},
		{ID: "cd4", Label: "Child’s pose breathing — 60 sec"},
	}

	WorkoutProgression = []string{
		"If you hit the top reps with clean form → increase dumbbell weight next time.",
		"If you feel tired → keep weight, improve form + control.",
		"Low-energy day → do 2 sets only (do not skip entirely).",
	}
)

type WorkoutTemplate struct {
	Type  string
	Name  string
	Steps []models.WorkoutStep
}

var WorkoutTemplates = map[string]WorkoutTemplate{
	models.WorkoutA: {
		Type: models.WorkoutA,
		Name: "Day A — Lower + Core",
		Steps: []models.WorkoutStep{
			{ID: "a1", Label: "Goblet squat — 4×10–12 (rest 60s)"},
			{ID: "a2", Label: "DB Romanian deadlift — 4×10 (rest 60–90s)"},
			{ID: "a3", Label: "Reverse lunges — 3×8/leg (rest 60s)"},
			{ID: "a4", Label: "Standing calf raises — 3×15 (rest 45s)"},
			{ID: "a5", Label: "Plank — 3×30–45s (rest 45–60s)"},
		},
	},
	models.WorkoutB: {
		Type: models.WorkoutB,
		Name: "Day B — Upper",
		Steps: []models.WorkoutStep{
			{ID: "b1", Label: "DB floor press — 4×8–10 (rest 60–90s)"},
			{ID: "b2", Label: "One-arm DB row — 4×10/arm (rest 60s)"},
			{ID: "b3", Label: "Standing shoulder press — 3×8–10 (rest 60–90s)"},
			{ID: "b4", Label: "Lateral raises — 3×12–15 (rest 45–60s)"},
			{ID: "b5", Label: "Curls + triceps extensions — 3×10–12 each (rest 60s)"},
		},
	},
	models.WorkoutC: {
		Type: models.WorkoutC,
		Name: "Day C — Conditioning (Optional)",
		Steps: []models.WorkoutStep{
			{ID: "c1", Label: "Farmer carries — 4 rounds × 30–40s (rest 60s)"},
			{ID: "c2", Label: "Bodyweight squats — 3×20 (rest 45–60s)"},
			{ID: "c3", Label: "Mountain climbers — 3×30s (rest 45–60s)"},
		},
	},
}

// BuildWorkout assembles a full workout (warmup + main + cooldown) for the
// given type. Returns nil for an empty or unknown type, i.e. a rest day.
func BuildWorkout(workoutType string) *models.Workout {
	t, ok := WorkoutTemplates[workoutType]
	if !ok {
		return nil
	}
	w := &models.Workout{
		Type:        t.Type,
		Title:       t.Name,
		Warmup:      make([]models.WorkoutStep, len(WorkoutWarmup)),
		Main:        make([]models.WorkoutStep, len(t.Steps)),
		Cooldown:    make([]models.WorkoutStep, len(WorkoutCooldown)),
		Progression: make([]string, len(WorkoutProgression)),
	}
	copy(w.Warmup, WorkoutWarmup)
	copy(w.Main, t.Steps)
	copy(w.Cooldown, WorkoutCooldown)
	copy(w.Progression, WorkoutProgression)
	return w
}
