// Package seed provides the sample data set used in sample-data mode:
// realistic food and water entries spread over the reference day and the
// two days before it, so the feed and the trend chart have something to
// show on a fresh store.
package seed

import (
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
	"github.com/jamundie/FoodTrackerApp/internal/service"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

type sampleFood struct {
	mealName string
	category model.FoodCategory
	time     service.TimeOfDay
	daysAgo  int
	rows     []service.RawIngredient
}

type sampleWater struct {
	entryName string
	time      service.TimeOfDay
	daysAgo   int
	rows      []service.RawIngredient
}

func grams(name, amount, per100 string) service.RawIngredient {
	return service.RawIngredient{Name: name, Amount: amount, Unit: model.UnitGrams, CaloriesPer100: per100}
}

func milliliters(name, amount, per100 string) service.RawIngredient {
	return service.RawIngredient{Name: name, Amount: amount, Unit: model.UnitMilliliters, CaloriesPer100: per100}
}

func pieces(name, amount, perPiece string) service.RawIngredient {
	return service.RawIngredient{Name: name, Amount: amount, Unit: model.UnitPiece, CaloriesPer100: perPiece}
}

var sampleFoods = []sampleFood{
	{"Greek Yogurt with Berries", model.CategoryBreakfast, service.TimeOfDay{Hours: 8, Minutes: 15}, 0, []service.RawIngredient{
		grams("Greek yogurt", "200", "59"),
		grams("Mixed berries", "100", "57"),
		grams("Honey", "20", "304"),
	}},
	{"Grilled Chicken Salad", model.CategoryLunch, service.TimeOfDay{Hours: 12, Minutes: 30}, 0, []service.RawIngredient{
		grams("Chicken breast", "150", "165"),
		grams("Mixed greens", "100", "22"),
		grams("Cherry tomatoes", "80", "18"),
		milliliters("Olive oil", "15", "884"),
	}},
	{"Afternoon Apple", model.CategorySnack, service.TimeOfDay{Hours: 15, Minutes: 45}, 0, []service.RawIngredient{
		pieces("Apple", "1", "52"),
		grams("Almond butter", "15", "614"),
	}},
	{"Salmon with Quinoa", model.CategoryDinner, service.TimeOfDay{Hours: 19, Minutes: 0}, 0, []service.RawIngredient{
		grams("Salmon fillet", "150", "208"),
		grams("Quinoa", "100", "120"),
		grams("Broccoli", "150", "34"),
		milliliters("Olive oil", "10", "884"),
	}},
	{"Oatmeal with Banana", model.CategoryBreakfast, service.TimeOfDay{Hours: 7, Minutes: 30}, 1, []service.RawIngredient{
		grams("Rolled oats", "50", "389"),
		pieces("Banana", "1", "89"),
		milliliters("Milk", "200", "42"),
		grams("Walnuts", "20", "654"),
	}},
	{"Turkey Sandwich", model.CategoryLunch, service.TimeOfDay{Hours: 13, Minutes: 15}, 1, []service.RawIngredient{
		pieces("Whole wheat bread", "2", "247"),
		grams("Turkey breast", "100", "104"),
		grams("Avocado", "50", "160"),
		grams("Lettuce", "30", "15"),
	}},
	{"Beef Stir Fry", model.CategoryDinner, service.TimeOfDay{Hours: 18, Minutes: 45}, 1, []service.RawIngredient{
		grams("Beef strips", "120", "250"),
		grams("Bell peppers", "100", "31"),
		grams("Brown rice", "80", "111"),
		milliliters("Soy sauce", "10", "8"),
	}},
	{"Dark Chocolate Square", model.CategoryDessert, service.TimeOfDay{Hours: 21, Minutes: 0}, 1, []service.RawIngredient{
		grams("Dark chocolate", "20", "546"),
	}},
	{"Scrambled Eggs with Toast", model.CategoryBreakfast, service.TimeOfDay{Hours: 8, Minutes: 0}, 2, []service.RawIngredient{
		pieces("Eggs", "2", "155"),
		pieces("Sourdough bread", "2", "289"),
		grams("Butter", "10", "717"),
		grams("Spinach", "50", "23"),
	}},
	{"Mediterranean Bowl", model.CategoryLunch, service.TimeOfDay{Hours: 12, Minutes: 45}, 2, []service.RawIngredient{
		grams("Chicken thigh", "130", "209"),
		grams("Chickpeas", "100", "164"),
		grams("Cucumber", "80", "16"),
		grams("Feta cheese", "40", "264"),
		grams("Tahini", "15", "595"),
	}},
	{"Trail Mix", model.CategorySnack, service.TimeOfDay{Hours: 16, Minutes: 30}, 2, []service.RawIngredient{
		grams("Almonds", "20", "579"),
		grams("Dried cranberries", "15", "308"),
		grams("Dark chocolate chips", "10", "501"),
	}},
	{"Vegetable Pasta", model.CategoryDinner, service.TimeOfDay{Hours: 19, Minutes: 30}, 2, []service.RawIngredient{
		grams("Whole wheat pasta", "100", "124"),
		grams("Zucchini", "150", "17"),
		grams("Tomato sauce", "100", "29"),
		grams("Parmesan cheese", "25", "431"),
		milliliters("Olive oil", "12", "884"),
	}},
}

var sampleWaters = []sampleWater{
	{"Morning Hydration", service.TimeOfDay{Hours: 7, Minutes: 0}, 0, []service.RawIngredient{
		milliliters("Water", "500", ""),
		milliliters("Lemon juice", "10", "22"),
	}},
	{"Midday Water Break", service.TimeOfDay{Hours: 11, Minutes: 30}, 0, []service.RawIngredient{
		milliliters("Water", "400", ""),
	}},
	{"Post-Workout Drink", service.TimeOfDay{Hours: 16, Minutes: 30}, 0, []service.RawIngredient{
		milliliters("Water", "750", ""),
		grams("Electrolyte powder", "5", "300"),
	}},
	{"Evening Tea", service.TimeOfDay{Hours: 20, Minutes: 15}, 0, []service.RawIngredient{
		milliliters("Water", "250", ""),
		grams("Green tea", "2", ""),
	}},
	{"Wake Up Water", service.TimeOfDay{Hours: 6, Minutes: 45}, 1, []service.RawIngredient{
		milliliters("Water", "350", ""),
	}},
	{"Lunch Hydration", service.TimeOfDay{Hours: 13, Minutes: 45}, 1, []service.RawIngredient{
		milliliters("Water", "300", ""),
		grams("Cucumber slices", "20", "16"),
	}},
	{"Afternoon Coconut Water", service.TimeOfDay{Hours: 15, Minutes: 0}, 1, []service.RawIngredient{
		milliliters("Coconut water", "330", "19"),
	}},
	{"Dinner Water", service.TimeOfDay{Hours: 19, Minutes: 15}, 1, []service.RawIngredient{
		milliliters("Water", "400", ""),
	}},
	{"Morning Start", service.TimeOfDay{Hours: 7, Minutes: 15}, 2, []service.RawIngredient{
		milliliters("Water", "450", ""),
		grams("Mint leaves", "5", "70"),
	}},
	{"Coffee Break Hydration", service.TimeOfDay{Hours: 10, Minutes: 30}, 2, []service.RawIngredient{
		milliliters("Water", "250", ""),
	}},
	{"Sparkling Water", service.TimeOfDay{Hours: 14, Minutes: 20}, 2, []service.RawIngredient{
		milliliters("Sparkling water", "330", ""),
		milliliters("Lime juice", "5", "25"),
	}},
	{"Pre-Dinner Water", service.TimeOfDay{Hours: 18, Minutes: 0}, 2, []service.RawIngredient{
		milliliters("Water", "500", ""),
	}},
	{"Herbal Tea", service.TimeOfDay{Hours: 21, Minutes: 30}, 2, []service.RawIngredient{
		milliliters("Water", "200", ""),
		grams("Chamomile tea", "2", ""),
		grams("Honey", "5", "304"),
	}},
}

// FoodEntries builds the sample food entries relative to now, through the
// real ingredient and entry builders so every derived total is consistent
// with live entries.
func FoodEntries(now time.Time) []model.FoodEntry {
	entries := make([]model.FoodEntry, 0, len(sampleFoods))
	for _, s := range sampleFoods {
		day := now.AddDate(0, 0, -s.daysAgo)
		timestamp := service.ComposeTimestamp(day, s.time.Hours, s.time.Minutes)
		entries = append(entries, service.BuildFoodEntry(s.mealName, s.category, timestamp, service.BuildIngredients(s.rows)))
	}
	return entries
}

// WaterEntries builds the sample water entries relative to now.
func WaterEntries(now time.Time) []model.WaterEntry {
	entries := make([]model.WaterEntry, 0, len(sampleWaters))
	for _, s := range sampleWaters {
		day := now.AddDate(0, 0, -s.daysAgo)
		timestamp := service.ComposeTimestamp(day, s.time.Hours, s.time.Minutes)
		entries = append(entries, service.BuildWaterEntry(s.entryName, timestamp, service.BuildIngredients(s.rows)))
	}
	return entries
}

// Apply appends the full sample set to the store.
func Apply(st *store.Store, now time.Time) {
	for _, entry := range FoodEntries(now) {
		st.AppendFoodEntry(entry)
	}
	for _, entry := range WaterEntries(now) {
		st.AppendWaterEntry(entry)
	}
}
