// Package catalog holds the fixed meal, sauce, workout, and grocery data the
// planner selects from. Everything here is read-only; callers snapshot values
// into plan days rather than referencing the catalog at read time.
//
// Macros are budget-friendly Moroccan estimates, good enough for planning, not
// medical advice.
package catalog

import "github.com/zakariamou/sahha/internal/models"

const (
	SlotBreakfast = "Breakfast"
	SlotSnack1    = "Snack 1"
	SlotLunch     = "Lunch"
	SlotSnack2    = "Snack 2"
	SlotDinner    = "Dinner"
)

var MealSlots = []string{SlotBreakfast, SlotSnack1, SlotLunch, SlotSnack2, SlotDinner}

var BreakfastEggsKhobz = models.MealDefinition{
	ID:     "breakfast_eggs_khobz",
	Name:   "Eggs + khobz + veg",
	Tags:   []string{"easy", "budget", "high-protein"},
	Macros: models.Macros{Calories: 520, ProteinG: 30, FatG: 22, CarbsG: 42},
	Ingredients: []models.Ingredient{
		{GroceryKey: "eggs", Name: "Eggs", Amount: 3, Unit: models.UnitPieces},
		{GroceryKey: "khobz", Name: "Khobz", Amount: 0.3, Unit: models.UnitLoaf},
		{GroceryKey: "tomato", Name: "Tomato", Amount: 250, Unit: models.UnitGrams},
		{GroceryKey: "onion", Name: "Onion", Amount: 80, Unit: models.UnitGrams},
		{GroceryKey: "tea", Name: "Tea", Amount: 1, Unit: models.UnitGeneric},
	},
	Display: []models.DisplayItem{
		{Name: "Eggs", Portion: "3 eggs"},
		{Name: "Khobz", Portion: "¼–⅓ loaf"},
		{Name: "Tomato + onion", Portion: "1–2 cups"},
		{Name: "Tea", Portion: "No sugar"},
	},
	TemplateKey: "breakfast",
}

var SnackYogurtFruit = models.MealDefinition{
	ID:     "snack_yogurt_fruit",
	Name:   "Yogurt/lben + fruit",
	Tags:   []string{"easy", "budget"},
	Macros: models.Macros{Calories: 240, ProteinG: 12, FatG: 6, CarbsG: 35},
	Ingredients: []models.Ingredient{
		{GroceryKey: "yogurt", Name: "Yogurt / Lben", Amount: 250, Unit: models.UnitMilliliters},
		{GroceryKey: "fruit", Name: "Fruit", Amount: 1, Unit: models.UnitPieces},
	},
	Display: []models.DisplayItem{
		{Name: "Yogurt / Lben", Portion: "1 cup"},
		{Name: "Fruit", Portion: "1 piece"},
	},
	TemplateKey: "snackYogurt",
}

var LunchChickenTagine = models.MealDefinition{
	ID:     "lunch_chicken_tagine",
	Name:   "Chicken tagine (veg heavy)",
	Tags:   []string{"budget", "high-protein"},
	Macros: models.Macros{Calories: 650, ProteinG: 45, FatG: 28, CarbsG: 50},
	Ingredients: []models.Ingredient{
		{GroceryKey: "chicken", Name: "Chicken thighs", Amount: 250, Unit: models.UnitGrams},
		{GroceryKey: "tomato", Name: "Tomato", Amount: 250, Unit: models.UnitGrams},
		{GroceryKey: "onion", Name: "Onion", Amount: 150, Unit: models.UnitGrams},
		{GroceryKey: "veg_mix", Name: "Mixed vegetables", Amount: 350, Unit: models.UnitGrams},
		{GroceryKey: "olive_oil", Name: "Olive oil", Amount: 5, Unit: models.UnitMilliliters},
		{GroceryKey: "khobz", Name: "Khobz", Amount: 0.25, Unit: models.UnitLoaf},
	},
	Display: []models.DisplayItem{
		{Name: "Chicken thighs", Portion: "150–200g cooked"},
		{Name: "Vegetables", Portion: "2–3 cups"},
		{Name: "Olive oil", Portion: "1 tsp–1 tbsp max"},
		{Name: "Khobz", Portion: "¼ loaf (optional)"},
	},
	TemplateKey: "lunchTagine",
}

var LunchSardinesTomato = models.MealDefinition{
	ID:     "lunch_sardines_tomato",
	Name:   "Sardines + salad + khobz",
	Tags:   []string{"budget", "high-protein", "quick"},
	Macros: models.Macros{Calories: 600, ProteinG: 40, FatG: 30, CarbsG: 40},
	Ingredients: []models.Ingredient{
		{GroceryKey: "sardines", Name: "Sardines", Amount: 220, Unit: models.UnitGrams},
		{GroceryKey: "tomato", Name: "Tomato", Amount: 300, Unit: models.UnitGrams},
		{GroceryKey: "onion", Name: "Onion", Amount: 80, Unit: models.UnitGrams},
		{GroceryKey: "olive_oil", Name: "Olive oil", Amount: 5, Unit: models.UnitMilliliters},
		{GroceryKey: "khobz", Name: "Khobz", Amount: 0.25, Unit: models.UnitLoaf},
	},
	Display: []models.DisplayItem{
		{Name: "Sardines", Portion: "200g"},
		{Name: "Salad", Portion: "2 cups"},
		{Name: "Khobz", Portion: "¼ loaf"},
	},
	TemplateKey: "lunchTagine",
}

var SnackEggsPeanuts = models.MealDefinition{
	ID:     "snack_eggs_peanuts",
	Name:   "Eggs + small peanuts",
	Tags:   []string{"easy"},
	Macros: models.Macros{Calories: 280, ProteinG: 18, FatG: 18, CarbsG: 8},
	Ingredients: []models.Ingredient{
		{GroceryKey: "eggs", Name: "Eggs", Amount: 2, Unit: models.UnitPieces},
		{GroceryKey: "peanuts", Name: "Peanuts", Amount: 20, Unit: models.UnitGrams},
	},
	Display: []models.DisplayItem{
		{Name: "Boiled eggs", Portion: "2 eggs"},
		{Name: "Peanuts", Portion: "small handful (optional)"},
	},
	TemplateKey: "snackEggs",
}

var DinnerTunaSalad = models.MealDefinition{
	ID:     "dinner_tuna_salad",
	Name:   "Tuna + big salad (no khobz)",
	Tags:   []string{"easy", "high-protein"},
	Macros: models.Macros{Calories: 480, ProteinG: 45, FatG: 12, CarbsG: 45},
	Ingredients: []models.Ingredient{
		{GroceryKey: "tuna", Name: "Tuna", Amount: 1, Unit: models.UnitCan},
		{GroceryKey: "tomato", Name: "Tomato", Amount: 250, Unit: models.UnitGrams},
		{GroceryKey: "onion", Name: "Onion", Amount: 60, Unit: models.UnitGrams},
		{GroceryKey: "veg_mix", Name: "Mixed vegetables", Amount: 250, Unit: models.UnitGrams},
		{GroceryKey: "lemon", Name: "Lemon", Amount: 0.5, Unit: models.UnitPieces},
	},
	Display: []models.DisplayItem{
		{Name: "Tuna", Portion: "1 can"},
		{Name: "Salad / veggies", Portion: "2–3 cups"},
		{Name: "Lemon + spices", Portion: "free"},
	},
	TemplateKey: "dinnerNoBread",
}

var DinnerLentilsPlate = models.MealDefinition{
	ID:     "dinner_lentils_plate",
	Name:   "Lentils bowl + vegetables (no khobz)",
	Tags:   []string{"budget", "fiber"},
	Macros: models.Macros{Calories: 520, ProteinG: 28, FatG: 12, CarbsG: 75},
	Ingredients: []models.Ingredient{
		{GroceryKey: "lentils", Name: "Lentils (dry)", Amount: 90, Unit: models.UnitGrams},
		{GroceryKey: "tomato", Name: "Tomato", Amount: 200, Unit: models.UnitGrams},
		{GroceryKey: "onion", Name: "Onion", Amount: 100, Unit: models.UnitGrams},
		{GroceryKey: "olive_oil", Name: "Olive oil", Amount: 5, Unit: models.UnitMilliliters},
	},
	Display: []models.DisplayItem{
		{Name: "Lentils", Portion: "1–1.5 cups cooked"},
		{Name: "Veg", Portion: "2 cups"},
	},
	TemplateKey: "dinnerNoBread",
}

// LunchPool and DinnerPool are the per-slot candidate pools the balancing
// search enumerates. Order matters: the first enumerated minimum wins ties.
var (
	LunchPool  = []models.MealDefinition{LunchChickenTagine, LunchSardinesTomato}
	DinnerPool = []models.MealDefinition{DinnerTunaSalad, DinnerLentilsPlate}
)

var MealLibrary = []models.MealDefinition{
	BreakfastEggsKhobz,
	SnackYogurtFruit,
	LunchChickenTagine,
	LunchSardinesTomato,
	SnackEggsPeanuts,
	DinnerTunaSalad,
	DinnerLentilsPlate,
}
