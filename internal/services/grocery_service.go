package services

import (
	"log"
	"sort"

	"github.com/zakariamou/sahha/internal/catalog"
	"github.com/zakariamou/sahha/internal/models"
)

// GroceryLine is one shopping-list row in purchase units.
type GroceryLine struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Note   string  `json:"note"`
	Qty    float64 `json:"qty"`
	Bought bool    `json:"bought"`
}

// legacyUnit tags accumulations that came from old-format items carrying rough
// quantities instead of measured ingredients.
const legacyUnit = "x"

type groceryTotal struct {
	qty  float64
	unit string
}

// wholeRounded lists keys sold by the piece: rounded to whole units with a
// floor of one so a partial need still lands on the list.
var wholeRounded = map[string]bool{
	"eggs":  true,
	"khobz": true,
	"fruit": true,
	"tuna":  true,
}

func roundWholeFloor1(qty float64) float64 {
	rounded := Round1(qty)
	whole := float64(int(rounded + 0.5))
	if whole < 1 {
		return 1
	}
	return whole
}

// AggregateMeals folds all meal ingredient contributions over the given days
// into one line per grocery key. Measured amounts normalize g to kg and ml to
// L as they accumulate; legacy rough quantities are corrected per key at the
// end. Accumulation is commutative, so day order never changes the result.
func AggregateMeals(days []models.PlanDay, bought map[string]bool) []GroceryLine {
	totals := make(map[string]*groceryTotal)
	add := func(key, unit string, qty float64) {
		t, ok := totals[key]
		if !ok {
			t = &groceryTotal{unit: unit}
			totals[key] = t
		}
		t.qty += qty
	}

	for _, day := range days {
		for _, meal := range day.Meals {
			if len(meal.Ingredients) > 0 {
				for _, ing := range meal.Ingredients {
					if ing.GroceryKey == "" {
						continue
					}
					qty, unit := ing.Amount, ing.Unit
					switch unit {
					case models.UnitGrams:
						qty, unit = qty/1000, "kg"
					case models.UnitMilliliters:
						qty, unit = qty/1000, "L"
					}
					add(ing.GroceryKey, unit, qty)
				}
				continue
			}
			for _, item := range meal.Items {
				if item.GroceryKey == "" {
					continue
				}
				add(item.GroceryKey, legacyUnit, item.Qty)
			}
		}
	}

	lines := make([]GroceryLine, 0, len(totals))
	for key, total := range totals {
		meta, ok := catalog.MealGroceryCatalog[key]
		if !ok {
			log.Printf("grocery: skipping unknown key %q", key)
			continue
		}
		qty := total.qty

		// Old rough quantities were per-meal multipliers, not amounts.
		if total.unit == legacyUnit {
			switch key {
			case "veg_mix":
				qty *= 0.7
			case "peanuts":
				qty *= 0.1
			case "yogurt":
				qty *= 0.25
			}
		}

		if wholeRounded[key] {
			qty = roundWholeFloor1(qty)
		}
		qty = Round1(qty)

		lines = append(lines, GroceryLine{
			Key:    key,
			Name:   meta.Name,
			Unit:   meta.Unit,
			Note:   meta.Note,
			Qty:    qty,
			Bought: bought[key],
		})
	}

	sortByOrder(lines, catalog.MealGroceryOrder)
	return lines
}

// AggregateSauces sums the per-use shopping approximations of every sauce
// recommended across the days.
func AggregateSauces(days []models.PlanDay, bought map[string]bool) []GroceryLine {
	totals := make(map[string]float64)
	for _, day := range days {
		for _, meal := range day.Meals {
			if meal.Sauce == nil {
				continue
			}
			sauce, ok := catalog.Sauces[meal.Sauce.ID]
			if !ok {
				log.Printf("grocery: skipping unknown sauce %q", meal.Sauce.ID)
				continue
			}
			for _, ing := range sauce.Ingredients {
				totals[ing.GroceryKey] += ing.Qty
			}
		}
	}

	lines := make([]GroceryLine, 0, len(totals))
	for key, qty := range totals {
		meta, ok := catalog.SauceGroceryCatalog[key]
		if !ok {
			log.Printf("grocery: skipping unknown key %q", key)
			continue
		}
		switch key {
		case "onion", "tomato":
			qty = Round1(qty)
		default:
			qty = roundWholeFloor1(qty)
		}
		lines = append(lines, GroceryLine{
			Key:    key,
			Name:   meta.Name,
			Unit:   meta.Unit,
			Note:   meta.Note,
			Qty:    qty,
			Bought: bought[key],
		})
	}

	sortByOrder(lines, catalog.SauceGroceryOrder)
	return lines
}

// MergeLines combines meal and sauce lines into a single list with one line
// per key. Overlapping keys sum quantities and keep the meal-line metadata.
func MergeLines(meals, sauces []GroceryLine) []GroceryLine {
	merged := make([]GroceryLine, len(meals))
	copy(merged, meals)
	index := make(map[string]int, len(merged))
	for i, line := range merged {
		index[line.Key] = i
	}
	for _, line := range sauces {
		if i, ok := index[line.Key]; ok {
			merged[i].Qty = Round1(merged[i].Qty + line.Qty)
			continue
		}
		index[line.Key] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// ApplyScale multiplies every quantity by factor, for cooking fewer servings
// than the plan assumes. Applied before pricing.
func ApplyScale(lines []GroceryLine, factor float64) []GroceryLine {
	out := make([]GroceryLine, len(lines))
	for i, line := range lines {
		line.Qty = Round1(line.Qty * factor)
		out[i] = line
	}
	return out
}

func sortByOrder(lines []GroceryLine, order []string) {
	rank := make(map[string]int, len(order))
	for i, key := range order {
		rank[key] = i
	}
	sort.SliceStable(lines, func(i, j int) bool {
		ri, ok := rank[lines[i].Key]
		if !ok {
			ri = len(order)
		}
		rj, ok := rank[lines[j].Key]
		if !ok {
			rj = len(order)
		}
		return ri < rj
	})
}
