package services

import "github.com/zakariamou/sahha/internal/models"

// DefaultMonthlyMultiplier approximates weeks per month for monthly budget
// estimates.
const DefaultMonthlyMultiplier = 4.3

// PricedLine is a grocery line with its cost attached.
type PricedLine struct {
	GroceryLine
	UnitPriceMAD float64 `json:"unitPriceMAD"`
	CostMAD      float64 `json:"costMAD"`
	MissingPrice bool    `json:"missingPrice"`
}

type CostSummary struct {
	Priced  []PricedLine `json:"priced"`
	Total   float64      `json:"total"`
	Missing int          `json:"missing"`
}

// ComputeCosts prices each line from the per-key price book. A zero or
// negative unit price marks the line as missing instead of pricing it at 0.
func ComputeCosts(lines []GroceryLine, priceByKey map[string]models.PriceEntry) CostSummary {
	summary := CostSummary{Priced: make([]PricedLine, 0, len(lines))}
	for _, line := range lines {
		entry, ok := priceByKey[line.Key]
		if !ok || entry.UnitPriceMAD <= 0 {
			summary.Missing++
			summary.Priced = append(summary.Priced, PricedLine{GroceryLine: line, MissingPrice: true})
			continue
		}
		cost := Round2(line.Qty * entry.UnitPriceMAD)
		summary.Total += cost
		summary.Priced = append(summary.Priced, PricedLine{
			GroceryLine:  line,
			UnitPriceMAD: entry.UnitPriceMAD,
			CostMAD:      cost,
		})
	}
	summary.Total = Round2(summary.Total)
	return summary
}

// MonthlyEstimate projects a weekly total to a month.
func MonthlyEstimate(weeklyTotal, multiplier float64) float64 {
	if multiplier <= 0 {
		multiplier = DefaultMonthlyMultiplier
	}
	return Round2(weeklyTotal * multiplier)
}

// ServingsScaleFactor shrinks the shopping list for days eaten out, clamped
// to [0, 1].
func ServingsScaleFactor(eatOutDaysPerWeek int) float64 {
	return Clamp(float64(7-eatOutDaysPerWeek)/7, 0, 1)
}
