package catalog

type Habit struct {
	Key   string
	Label string
}

// Habits is the fixed daily habit checklist seeded into every new log.
var Habits = []Habit{
	{Key: "water", Label: "Water 2–3L"},
	{Key: "sleep", Label: "Sleep 7–8h"},
	{Key: "teaNoSugar", Label: "Tea no sugar"},
	{Key: "noSoda", Label: "No soda"},
	{Key: "lateNightControl", Label: "Late-night eating controlled"},
}
