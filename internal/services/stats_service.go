package services

import (
	"math"
	"sort"

	"github.com/zakariamou/sahha/internal/models"
)

type WeightPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Adherence struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

type StatsOverview struct {
	Adherence Adherence     `json:"adherence"`
	Weights   []WeightPoint `json:"weights"`
	MovingAvg []WeightPoint `json:"movingAvg"`
	Expected  []WeightPoint `json:"expected"`
	Plateau   string        `json:"plateau,omitempty"`
}

// AdherenceScore reports checklist completion over the last 14 logs.
func AdherenceScore(logs []models.DailyLog) Adherence {
	if len(logs) == 0 {
		return Adherence{}
	}
	recent := logs
	if len(recent) > 14 {
		recent = recent[len(recent)-14:]
	}
	total, done := 0, 0
	for _, l := range recent {
		total += len(l.WorkoutChecks) + len(l.MealChecks) + len(l.HabitChecks)
		for _, c := range l.WorkoutChecks {
			if c.Done {
				done++
			}
		}
		for _, c := range l.MealChecks {
			if c.Done {
				done++
			}
		}
		for _, checked := range l.HabitChecks {
			if checked {
				done++
			}
		}
	}
	if total == 0 {
		return Adherence{}
	}
	score := int(math.Round(float64(done) / float64(total) * 100))
	label := "Low"
	switch {
	case score >= 85:
		label = "Strong"
	case score >= 70:
		label = "Okay"
	}
	return Adherence{Score: score, Label: label}
}

// ExpectedWeightSeries projects the goal trajectory onto the given dates.
// Recomp assumes half the loss pace.
func ExpectedWeightSeries(startWeightKg float64, startDate string, dates []string, goal models.Goal) []WeightPoint {
	start, err := ParseDay(startDate)
	if err != nil {
		return nil
	}
	speed := goal.SpeedKgPerWeek
	if speed == 0 {
		speed = 0.5
	}
	var sign float64
	switch goal.Type {
	case models.GoalGain:
		sign = 1
	case models.GoalLose:
		sign = -1
	default:
		sign = -0.5
	}
	out := make([]WeightPoint, 0, len(dates))
	for _, d := range dates {
		day, err := ParseDay(d)
		if err != nil {
			continue
		}
		weeks := float64(DiffDays(start, day)) / 7
		out = append(out, WeightPoint{Date: d, Value: Round1(startWeightKg + sign*speed*weeks)})
	}
	return out
}

// MovingAverage smooths each point over the preceding windowDays of samples,
// the point itself included.
func MovingAverage(points []WeightPoint, windowDays int) []WeightPoint {
	if len(points) == 0 {
		return nil
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	out := make([]WeightPoint, 0, len(points))
	for _, p := range points {
		end, err := ParseDay(p.Date)
		if err != nil {
			continue
		}
		sum, count := 0.0, 0
		for _, q := range points {
			day, err := ParseDay(q.Date)
			if err != nil {
				continue
			}
			diff := DiffDays(day, end)
			if diff >= 0 && diff <= windowDays {
				sum += q.Value
				count++
			}
		}
		if count == 0 {
			count = 1
		}
		out = append(out, WeightPoint{Date: p.Date, Value: Round1(sum / float64(count))})
	}
	return out
}

// PlateauSuggestion flags roughly three stalled weeks on a deficit. Returns
// an empty string when there is no signal; gain goals never plateau here.
func PlateauSuggestion(weights []WeightPoint, goal models.Goal) string {
	if len(weights) < 4 || goal.Type == models.GoalGain {
		return ""
	}
	last := weights[len(weights)-1]
	lastDay, err := ParseDay(last.Date)
	if err != nil {
		return ""
	}
	recent := make([]WeightPoint, 0, len(weights))
	for _, w := range weights {
		day, err := ParseDay(w.Date)
		if err != nil {
			continue
		}
		if DiffDays(day, lastDay) <= 21 {
			recent = append(recent, w)
		}
	}
	if len(recent) < 3 {
		return ""
	}
	if last.Value-recent[0].Value > -0.2 {
		return "Plateau signal (≈2–3 weeks). If adherence is solid, adjust: -100 kcal/day OR +2000 steps/day."
	}
	return ""
}

// BuildStatsOverview assembles the dashboard payload from settings, recent
// logs, and weight measurements.
func BuildStatsOverview(settings models.Settings, logs []models.DailyLog, measurements []models.Measurement) StatsOverview {
	weights := make([]WeightPoint, 0, len(measurements))
	for _, m := range measurements {
		if m.Type != models.MeasurementWeight {
			continue
		}
		weights = append(weights, WeightPoint{Date: m.Date, Value: m.Value})
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i].Date < weights[j].Date })

	dates := make([]string, len(weights))
	for i, w := range weights {
		dates[i] = w.Date
	}

	startWeight := settings.Profile.StartWeightKg
	if startWeight <= 0 {
		startWeight = settings.Profile.WeightKg
	}

	return StatsOverview{
		Adherence: AdherenceScore(logs),
		Weights:   weights,
		MovingAvg: MovingAverage(weights, 7),
		Expected:  ExpectedWeightSeries(startWeight, settings.StartDate, dates, settings.Goal),
		Plateau:   PlateauSuggestion(weights, settings.Goal),
	}
}
