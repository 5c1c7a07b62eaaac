package catalog

import "github.com/zakariamou/sahha/internal/models"

// SauceIngredient is a purchase-oriented approximation per use of the sauce,
// already expressed in purchase units (kg for onion/tomato, fractional heads,
// pieces, packs, bunches).
type SauceIngredient struct {
	GroceryKey string
	Qty        float64
}

// Sauce is a low-calorie flavor suggestion. Macros are deliberately not
// tracked; only the portion rule and a shopping approximation matter.
type Sauce struct {
	ID                 string
	Name               string
	PortionRule        string
	LowCalNote         string
	Ingredients        []SauceIngredient
	DisplayIngredients []string
	Steps              []string
	Storage            string
}

// Ref returns the informational snapshot attached to plan meals.
func (s Sauce) Ref() *models.SauceRef {
	return &models.SauceRef{ID: s.ID, Name: s.Name, PortionRule: s.PortionRule, LowCalNote: s.LowCalNote}
}

var SauceYogurtGarlic = Sauce{
	ID:          "yogurtGarlic",
	Name:        "Yogurt–Garlic Sauce",
	PortionRule: "1–2 tbsp max",
	LowCalNote:  "Low-calorie flavor boost",
	Ingredients: []SauceIngredient{
		{GroceryKey: "garlic", Qty: 0.15},
		{GroceryKey: "lemon", Qty: 0.1},
		{GroceryKey: "spices", Qty: 0.03},
		{GroceryKey: "herbs", Qty: 0.05},
	},
	DisplayIngredients: []string{
		"Yogurt / lben",
		"Garlic",
		"Lemon or vinegar",
		"Cumin",
		"Black pepper",
		"Salt",
		"Optional parsley/coriander",
	},
	Steps: []string{
		"Mix yogurt/lben with crushed garlic.",
		"Add lemon (or vinegar), cumin, black pepper, and a pinch of salt.",
		"Optional: add chopped parsley/coriander.",
		"Rest 5–10 minutes so the garlic flavor opens up.",
	},
	Storage: "Fridge 2–3 days in a sealed container.",
}

var SauceLightChermoula = Sauce{
	ID:          "lightChermoula",
	Name:        "Light Chermoula Sauce",
	PortionRule: "Use lightly (no extra oil)",
	LowCalNote:  "Spice-forward; max 1 tsp olive oil per batch",
	Ingredients: []SauceIngredient{
		{GroceryKey: "garlic", Qty: 0.2},
		{GroceryKey: "lemon", Qty: 0.15},
		{GroceryKey: "spices", Qty: 0.05},
		{GroceryKey: "herbs", Qty: 0.07},
	},
	DisplayIngredients: []string{
		"Garlic",
		"Cumin",
		"Paprika",
		"Coriander",
		"Lemon",
		"Salt",
		"Max 1 tsp olive oil per batch",
	},
	Steps: []string{
		"Crush garlic with cumin, paprika, coriander, salt, and lemon juice.",
		"Add herbs (coriander/parsley).",
		"Optional: add up to 1 tsp olive oil for the whole batch (not per serving).",
		"Marinate chicken/sardines 10–30 minutes or spoon over after cooking.",
	},
	Storage: "Fridge 2–3 days. Keep oil minimal.",
}

var SauceTomatoOnion = Sauce{
	ID:          "tomatoOnion",
	Name:        "Tomato–Onion Reduction",
	PortionRule: "2 tbsp max",
	LowCalNote:  "Cooked-down flavor; max 1 tsp olive oil",
	Ingredients: []SauceIngredient{
		{GroceryKey: "onion", Qty: 0.15},
		{GroceryKey: "tomato", Qty: 0.25},
		{GroceryKey: "garlic", Qty: 0.1},
		{GroceryKey: "spices", Qty: 0.04},
	},
	DisplayIngredients: []string{
		"Onion",
		"Tomato",
		"Garlic",
		"Paprika",
		"Black pepper",
		"Salt",
		"Max 1 tsp olive oil",
	},
	Steps: []string{
		"Slice onion, grate tomato, mince garlic.",
		"Cook onion with max 1 tsp olive oil until soft.",
		"Add tomato + spices; reduce until thick (water evaporates).",
		"Use as a topping for vegetables/tagine-style plates.",
	},
	Storage: "Fridge 2–3 days. Reheat gently.",
}

var Sauces = map[string]Sauce{
	SauceYogurtGarlic.ID:   SauceYogurtGarlic,
	SauceLightChermoula.ID: SauceLightChermoula,
	SauceTomatoOnion.ID:    SauceTomatoOnion,
}

// SauceForTemplate maps a meal template to its 0-or-1 recommended sauce.
// Add-ons and unknown templates get none.
func SauceForTemplate(templateKey string) (Sauce, bool) {
	switch templateKey {
	case "lunchTagine":
		return SauceLightChermoula, true
	case "breakfast", "snackEggs":
		return SauceYogurtGarlic, true
	case "dinnerNoBread":
		return SauceTomatoOnion, true
	}
	return Sauce{}, false
}
