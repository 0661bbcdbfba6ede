package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jamundie/FoodTrackerApp/internal/model"
)

// RawIngredient is one ingredient row exactly as a form hands it over:
// numeric fields are possibly-empty, possibly-malformed text.
type RawIngredient struct {
	Name           string
	Amount         string
	Unit           model.Unit
	CaloriesPer100 string
}

// ComputeCalories derives an ingredient's calorie contribution. It returns
// nil when the contribution is unknown: density unset or zero, or a
// non-positive amount. For grams and milliliters the density is calories per
// 100 units; for pieces it is calories per single piece. No rounding happens
// here, rounding is display-only.
func ComputeCalories(amount float64, unit model.Unit, caloriesPer100 *float64) *float64 {
	if caloriesPer100 == nil || *caloriesPer100 == 0 || amount <= 0 {
		return nil
	}
	var calories float64
	switch unit {
	case model.UnitGrams, model.UnitMilliliters:
		calories = amount * *caloriesPer100 / 100
	case model.UnitPiece:
		calories = amount * *caloriesPer100
	default:
		return nil
	}
	return &calories
}

// BuildIngredients normalizes raw form rows into ingredient records. Rows
// whose trimmed name or trimmed amount is empty are dropped silently; the
// surviving rows keep their input order and each gets a fresh id.
func BuildIngredients(rows []RawIngredient) []model.Ingredient {
	ingredients := make([]model.Ingredient, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || strings.TrimSpace(row.Amount) == "" {
			continue
		}
		amount := parseAmount(row.Amount)
		density := parseDensity(row.CaloriesPer100)
		ingredients = append(ingredients, model.Ingredient{
			ID:                 uuid.NewString(),
			Name:               name,
			Amount:             amount,
			Unit:               row.Unit,
			CaloriesPer100:     density,
			CalculatedCalories: ComputeCalories(amount, row.Unit, density),
		})
	}
	return ingredients
}

// parseAmount coerces a raw amount to a number. Anything that does not parse
// as a positive number becomes 0; this never errors.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseDensity coerces a raw calorie density to a pointer. Malformed,
// zero and negative values all mean "unknown" and become nil.
func parseDensity(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
