package services

import (
	"github.com/zakariamou/sahha/internal/catalog"
	"github.com/zakariamou/sahha/internal/models"
)

// SlotMeal is a chosen meal bound to its slot, before it becomes a PlanMeal.
type SlotMeal struct {
	Slot string
	Meal models.MealDefinition
}

func SumMealMacros(meals []SlotMeal) models.Macros {
	var total models.Macros
	for _, m := range meals {
		total = total.Add(m.Meal.Macros)
	}
	return total
}

// scoreMacros measures how far a day total lands from the targets. Calories
// and protein are weighted above fat and carbs; dimensions with a zero target
// contribute nothing.
func scoreMacros(total models.Macros, targets *models.TargetProfile) float64 {
	if targets == nil {
		return 0
	}
	relative := func(value, target float64) float64 {
		if target == 0 {
			return 0
		}
		return (value - target) / target
	}
	dc := relative(total.Calories, float64(targets.Calories))
	dp := relative(total.ProteinG, float64(targets.ProteinG))
	df := relative(total.FatG, float64(targets.FatG))
	dcarb := relative(total.CarbsG, float64(targets.CarbsG))
	return dc*dc*3 + dp*dp*2 + df*df + dcarb*dcarb
}

func cloneMeal(meal models.MealDefinition) models.MealDefinition {
	out := meal
	out.Tags = append([]string(nil), meal.Tags...)
	out.Ingredients = append([]models.Ingredient(nil), meal.Ingredients...)
	out.Display = append([]models.DisplayItem(nil), meal.Display...)
	return out
}

// mergeAddon folds a portion-controlled extra into a meal: combined name,
// summed macros, concatenated ingredient and display lists.
func mergeAddon(meal, addon models.MealDefinition) models.MealDefinition {
	out := cloneMeal(meal)
	out.Name = out.Name + " + " + addon.Name
	out.Macros = out.Macros.Add(addon.Macros)
	out.Ingredients = append(out.Ingredients, addon.Ingredients...)
	out.Display = append(out.Display, addon.Display...)
	return out
}

// baseSlots lays out the fixed slots for a day: breakfast and snacks are
// constant, lunch and dinner come from the candidate pools.
func baseSlots(mealsPerDay int, lunch, dinner models.MealDefinition) []SlotMeal {
	meals := make([]SlotMeal, 0, 5)
	meals = append(meals, SlotMeal{Slot: catalog.SlotBreakfast, Meal: catalog.BreakfastEggsKhobz})
	if mealsPerDay >= 4 {
		meals = append(meals, SlotMeal{Slot: catalog.SlotSnack1, Meal: catalog.SnackYogurtFruit})
	}
	meals = append(meals, SlotMeal{Slot: catalog.SlotLunch, Meal: lunch})
	if mealsPerDay >= 5 {
		meals = append(meals, SlotMeal{Slot: catalog.SlotSnack2, Meal: catalog.SnackEggsPeanuts})
	}
	meals = append(meals, SlotMeal{Slot: catalog.SlotDinner, Meal: dinner})
	return meals
}

// SelectMealsForDay picks the day's meals. With targets it enumerates every
// lunch+dinner combination (dinner varies fastest) and keeps the first strict
// minimum of the macro score, then closes remaining gaps with at most two
// add-ons. Without targets it falls back to simple rotation.
func SelectMealsForDay(mealsPerDay, rotateIndex int, targets *models.TargetProfile) []SlotMeal {
	if mealsPerDay < 3 {
		mealsPerDay = 3
	}
	if targets == nil {
		lunch := catalog.LunchPool[rotateIndex%len(catalog.LunchPool)]
		dinner := catalog.DinnerPool[rotateIndex%len(catalog.DinnerPool)]
		return baseSlots(mealsPerDay, lunch, dinner)
	}

	var best []SlotMeal
	var bestScore float64
	for _, lunch := range catalog.LunchPool {
		for _, dinner := range catalog.DinnerPool {
			combo := baseSlots(mealsPerDay, lunch, dinner)
			score := scoreMacros(SumMealMacros(combo), targets)
			if best == nil || score < bestScore {
				best = combo
				bestScore = score
			}
		}
	}

	return applyAddons(best, mealsPerDay, targets)
}

// applyAddons greedily attaches up to two small extras when the combo still
// undershoots. Additions are never rolled back even if they overshoot.
func applyAddons(meals []SlotMeal, mealsPerDay int, targets *models.TargetProfile) []SlotMeal {
	total := SumMealMacros(meals)

	apply := func(slot string, addon models.MealDefinition) {
		for i := range meals {
			if meals[i].Slot == slot {
				meals[i].Meal = mergeAddon(meals[i].Meal, addon)
				total = total.Add(addon.Macros)
				return
			}
		}
	}

	slotPref := catalog.SlotDinner
	if mealsPerDay >= 5 {
		slotPref = catalog.SlotSnack2
	} else if mealsPerDay >= 4 {
		slotPref = catalog.SlotSnack1
	}

	tc := float64(targets.Calories)
	tp := float64(targets.ProteinG)
	tf := float64(targets.FatG)
	tcarb := float64(targets.CarbsG)

	used := 0
	if used < 2 && tp > 0 && total.ProteinG < tp*0.9 {
		apply(slotPref, catalog.AddonExtraEgg)
		used++
	}
	if used < 2 && tc > 0 && total.Calories < tc*0.92 {
		if tcarb > 0 && total.CarbsG < tcarb*0.9 {
			apply(slotPref, catalog.AddonExtraFruit)
		} else if tf > 0 && total.FatG < tf*0.9 {
			apply(catalog.SlotDinner, catalog.AddonOliveOilTsp)
		} else {
			apply(slotPref, catalog.AddonExtraYogurt)
		}
		used++
	}
	if used < 2 && tc > 0 && total.Calories < tc*0.92 {
		apply(catalog.SlotLunch, catalog.AddonExtraKhobzQuarter)
		used++
	}
	return meals
}
