package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jamundie/FoodTrackerApp/internal/model"
)

// TotalCalories sums the calculated calories of the given ingredients,
// treating unknown contributions as 0.
func TotalCalories(ingredients []model.Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		if ing.CalculatedCalories != nil {
			total += *ing.CalculatedCalories
		}
	}
	return total
}

// TotalVolume sums the amounts of the milliliter-denominated ingredients
// only. Solid flavoring additions do not count toward volume.
func TotalVolume(ingredients []model.Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		if ing.Unit == model.UnitMilliliters {
			total += ing.Amount
		}
	}
	return total
}

// BuildFoodEntry assembles a food entry from pre-validated form data. The
// aggregate total is derived once, here, and suppressed to nil unless it is
// strictly positive so "no known calories" stays distinguishable from zero.
func BuildFoodEntry(mealName string, category model.FoodCategory, timestamp string, ingredients []model.Ingredient) model.FoodEntry {
	entry := model.FoodEntry{
		ID:          uuid.NewString(),
		MealName:    strings.TrimSpace(mealName),
		Category:    category,
		Timestamp:   timestamp,
		Ingredients: ingredients,
	}
	if total := TotalCalories(ingredients); total > 0 {
		entry.TotalCalories = &total
	}
	return entry
}

// BuildWaterEntry assembles a water entry from pre-validated form data,
// deriving the total volume with the same strictly-positive suppression as
// BuildFoodEntry.
func BuildWaterEntry(entryName, timestamp string, ingredients []model.Ingredient) model.WaterEntry {
	entry := model.WaterEntry{
		ID:          uuid.NewString(),
		EntryName:   strings.TrimSpace(entryName),
		Timestamp:   timestamp,
		Ingredients: ingredients,
	}
	if total := TotalVolume(ingredients); total > 0 {
		entry.TotalVolume = &total
	}
	return entry
}
