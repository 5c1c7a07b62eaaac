package services

import (
	"math"
	"time"
)

// DayFormat is the canonical date encoding everywhere in the app: storage,
// API parameters, and plan identity.
const DayFormat = "2006-01-02"

func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, value, time.UTC)
}

func FormatDay(value time.Time) string {
	return value.Format(DayFormat)
}

// WeekdayIndex returns Monday=0 through Sunday=6.
func WeekdayIndex(value time.Time) int {
	return (int(value.Weekday()) + 6) % 7
}

// DiffDays returns whole days from a to b, ignoring time-of-day.
func DiffDays(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(bd.Sub(ad).Hours() / 24))
}

func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

func Round1(n float64) float64 {
	return math.Round(n*10) / 10
}

func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}
