package model

// Unit is the measurement unit of an ingredient amount.
type Unit string

const (
	UnitGrams       Unit = "g"
	UnitMilliliters Unit = "ml"
	UnitPiece       Unit = "piece"
)

// FoodCategory classifies a food entry.
type FoodCategory string

const (
	CategoryBreakfast FoodCategory = "Breakfast"
	CategoryLunch     FoodCategory = "Lunch"
	CategoryDinner    FoodCategory = "Dinner"
	CategorySnack     FoodCategory = "Snack"
	CategoryMainDish  FoodCategory = "Main Dish"
	CategorySideDish  FoodCategory = "Side Dish"
	CategoryAppetizer FoodCategory = "Appetizer"
	CategoryDessert   FoodCategory = "Dessert"
	CategoryOther     FoodCategory = "Other"
)

// FoodCategories lists every built-in category in menu order.
var FoodCategories = []FoodCategory{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategorySnack,
	CategoryMainDish,
	CategorySideDish,
	CategoryAppetizer,
	CategoryDessert,
	CategoryOther,
}

// Ingredient is one normalized line item of an entry. CaloriesPer100 is the
// calorie density per 100 g/ml, or per single piece for piece-counted items.
// CalculatedCalories is derived from Amount, Unit and CaloriesPer100 and is
// nil when the contribution is unknown (which is not the same as zero).
type Ingredient struct {
	ID                 string
	Name               string
	Amount             float64
	Unit               Unit
	CaloriesPer100     *float64
	CalculatedCalories *float64
}

// FoodEntry is one logged meal. Timestamp is an ISO-8601 UTC instant.
// TotalCalories is the sum of the ingredients' calculated calories and is
// nil when no ingredient contributed a known, positive amount. Entries are
// immutable once appended to the store.
type FoodEntry struct {
	ID            string
	MealName      string
	Category      FoodCategory
	Timestamp     string
	Ingredients   []Ingredient
	TotalCalories *float64
}

// WaterEntry is one logged beverage. TotalVolume sums only the
// milliliter-denominated ingredients; flavoring additions measured in grams
// or pieces do not count toward volume.
type WaterEntry struct {
	ID          string
	EntryName   string
	Timestamp   string
	Ingredients []Ingredient
	TotalVolume *float64
}

// EntryTimestamp implements the timeline ordering hook.
func (e FoodEntry) EntryTimestamp() string { return e.Timestamp }

// EntryTimestamp implements the timeline ordering hook.
func (e WaterEntry) EntryTimestamp() string { return e.Timestamp }

// Timed is any record placeable on the tracking timeline.
type Timed interface {
	EntryTimestamp() string
}
