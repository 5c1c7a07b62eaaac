package catalog

// GroceryMeta describes how an aggregated ingredient key is presented on the
// shopping list. Unit here is the purchase unit, not the recipe unit.
type GroceryMeta struct {
	Name string
	Unit string
	Note string
}

// MealGroceryCatalog covers keys reachable from meal ingredients.
var MealGroceryCatalog = map[string]GroceryMeta{
	"eggs":      {Name: "Eggs", Unit: "pcs", Note: "Cheap protein"},
	"khobz":     {Name: "Khobz", Unit: "loaves", Note: "Portion control: ¼–⅓"},
	"veg_mix":   {Name: "Vegetables (seasonal mix)", Unit: "kg", Note: "Buy seasonal for budget"},
	"tomato":    {Name: "Tomato", Unit: "kg", Note: "Seasonal is cheaper"},
	"onion":     {Name: "Onion", Unit: "kg", Note: "Base for salads/sauces"},
	"lemon":     {Name: "Lemon", Unit: "pcs", Note: "Or vinegar"},
	"tea":       {Name: "Tea", Unit: "pack", Note: "No sugar"},
	"yogurt":    {Name: "Yogurt / Lben", Unit: "L", Note: "Plain if possible"},
	"fruit":     {Name: "Fruits (apple/banana/orange)", Unit: "pcs", Note: "Pick affordable"},
	"olive_oil": {Name: "Olive oil", Unit: "L", Note: "Measure 1 tbsp"},
	"peanuts":   {Name: "Peanuts", Unit: "kg", Note: "Optional; small portions"},
	"chicken":   {Name: "Chicken thighs", Unit: "kg", Note: "Budget-friendly"},
	"sardines":  {Name: "Sardines", Unit: "kg", Note: "Great protein + omega-3"},
	"tuna":      {Name: "Tuna", Unit: "cans", Note: "Prefer plain (water/brine)"},
	"lentils":   {Name: "Lentils", Unit: "kg", Note: "Dry weight"},
}

// MealGroceryOrder fixes the display order: proteins first, then veg, then
// the rest.
var MealGroceryOrder = []string{
	"chicken", "sardines", "tuna", "lentils", "eggs",
	"veg_mix", "tomato", "onion", "fruit", "yogurt",
	"khobz", "olive_oil", "lemon", "tea", "peanuts",
}

// SauceGroceryCatalog covers keys reachable from sauce ingredients. Kept as a
// separate list so sauce shopping stays optional.
var SauceGroceryCatalog = map[string]GroceryMeta{
	"garlic": {Name: "Garlic", Unit: "heads", Note: "Flavor without calories"},
	"lemon":  {Name: "Lemon", Unit: "pcs", Note: "Or vinegar"},
	"onion":  {Name: "Onion", Unit: "kg", Note: "Base for reduction"},
	"tomato": {Name: "Tomato", Unit: "kg", Note: "Base for reduction"},
	"spices": {Name: "Spices", Unit: "pack", Note: "Cumin/paprika/pepper/salt"},
	"herbs":  {Name: "Parsley/Coriander", Unit: "bunch", Note: "Optional"},
}

var SauceGroceryOrder = []string{"garlic", "lemon", "onion", "tomato", "spices", "herbs"}
