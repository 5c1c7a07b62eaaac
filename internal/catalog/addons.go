package catalog

import "github.com/zakariamou/sahha/internal/models"

// Add-ons are small portion-controlled extras merged into an existing meal to
// close macro gaps. They never appear as standalone slots.
var (
	AddonExtraFruit = models.MealDefinition{
		ID:          "addon_fruit",
		Name:        "Extra fruit",
		Tags:        []string{"easy", "budget"},
		Macros:      models.Macros{Calories: 80, ProteinG: 1, FatG: 0, CarbsG: 21},
		Ingredients: []models.Ingredient{{GroceryKey: "fruit", Name: "Fruit", Amount: 1, Unit: models.UnitPieces}},
		Display:     []models.DisplayItem{{Name: "Fruit", Portion: "1 piece (apple/banana/orange)"}},
		TemplateKey: "addon",
	}

	AddonExtraEgg = models.MealDefinition{
		ID:          "addon_egg",
		Name:        "Extra egg",
		Tags:        []string{"easy", "budget", "high-protein"},
		Macros:      models.Macros{Calories: 70, ProteinG: 6, FatG: 5, CarbsG: 0},
		Ingredients: []models.Ingredient{{GroceryKey: "eggs", Name: "Eggs", Amount: 1, Unit: models.UnitPieces}},
		Display:     []models.DisplayItem{{Name: "Egg", Portion: "1 egg"}},
		TemplateKey: "addon",
	}

	AddonExtraYogurt = models.MealDefinition{
		ID:          "addon_yogurt",
		Name:        "Extra yogurt/lben",
		Tags:        []string{"easy", "budget", "high-protein"},
		Macros:      models.Macros{Calories: 120, ProteinG: 8, FatG: 4, CarbsG: 12},
		Ingredients: []models.Ingredient{{GroceryKey: "yogurt", Name: "Yogurt/Lben", Amount: 250, Unit: models.UnitMilliliters}},
		Display:     []models.DisplayItem{{Name: "Yogurt/Lben", Portion: "1 cup"}},
		TemplateKey: "addon",
	}

	AddonExtraKhobzQuarter = models.MealDefinition{
		ID:          "addon_khobz",
		Name:        "Extra khobz (¼)",
		Tags:        []string{"budget"},
		Macros:      models.Macros{Calories: 120, ProteinG: 4, FatG: 1, CarbsG: 24},
		Ingredients: []models.Ingredient{{GroceryKey: "khobz", Name: "Khobz", Amount: 0.25, Unit: models.UnitLoaf}},
		Display:     []models.DisplayItem{{Name: "Khobz", Portion: "¼ loaf"}},
		TemplateKey: "addon",
	}

	AddonOliveOilTsp = models.MealDefinition{
		ID:          "addon_oil",
		Name:        "Olive oil (1 tsp)",
		Tags:        []string{"easy"},
		Macros:      models.Macros{Calories: 40, ProteinG: 0, FatG: 4.5, CarbsG: 0},
		Ingredients: []models.Ingredient{{GroceryKey: "olive_oil", Name: "Olive oil", Amount: 5, Unit: models.UnitMilliliters}},
		Display:     []models.DisplayItem{{Name: "Olive oil", Portion: "1 tsp"}},
		TemplateKey: "addon",
	}
)
