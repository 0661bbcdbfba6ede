package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
	"github.com/jamundie/FoodTrackerApp/internal/service"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

func TestFoodFormValidationGates(t *testing.T) {
	t.Parallel()

	form := service.NewFoodEntryForm(service.DefaultCategoryPolicy())
	if err := form.Validate(); err == nil || !strings.Contains(err.Error(), "meal name") {
		t.Fatalf("expected meal name error, got %v", err)
	}

	form.MealName = "Spaghetti Bolognese"
	if err := form.Validate(); err == nil || !strings.Contains(err.Error(), "category") {
		t.Fatalf("expected category error, got %v", err)
	}

	form.Category = "Main Dish"
	if err := form.Validate(); err == nil || !strings.Contains(err.Error(), "ingredient") {
		t.Fatalf("expected ingredient error, got %v", err)
	}

	if err := form.UpdateIngredientRow(0, service.RawIngredient{Name: "Ground Beef", Amount: "200", Unit: model.UnitGrams}); err != nil {
		t.Fatalf("update row: %v", err)
	}
	if err := form.Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestFoodFormIngredientRowEditing(t *testing.T) {
	t.Parallel()

	form := service.NewFoodEntryForm(service.DefaultCategoryPolicy())
	if len(form.Ingredients) != 1 {
		t.Fatalf("expected one blank starting row, got %d", len(form.Ingredients))
	}

	form.RemoveIngredientRow(0)
	if len(form.Ingredients) != 1 {
		t.Fatalf("removing the last row must be a no-op, got %d rows", len(form.Ingredients))
	}

	form.AddIngredientRow()
	form.AddIngredientRow()
	if len(form.Ingredients) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(form.Ingredients))
	}
	form.RemoveIngredientRow(1)
	if len(form.Ingredients) != 2 {
		t.Fatalf("expected 2 rows after removal, got %d", len(form.Ingredients))
	}
	if err := form.UpdateIngredientRow(5, service.RawIngredient{}); err == nil {
		t.Fatalf("expected error for out-of-range row")
	}
}

func TestFoodFormSubmitEndToEnd(t *testing.T) {
	t.Parallel()

	st := store.New()
	form := service.NewFoodEntryForm(service.DefaultCategoryPolicy())
	form.MealName = "Spaghetti Bolognese"
	form.Category = "Main Dish"
	form.SelectedDate = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	form.SelectedTime = service.TimeOfDay{Hours: 19, Minutes: 0}
	if err := form.UpdateIngredientRow(0, service.RawIngredient{
		Name: "Ground Beef", Amount: "200", Unit: model.UnitGrams, CaloriesPer100: "250",
	}); err != nil {
		t.Fatalf("update row: %v", err)
	}

	entry, err := form.Submit(st)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.TotalCalories == nil || *entry.TotalCalories != 500 {
		t.Fatalf("expected 500 total calories, got %v", entry.TotalCalories)
	}
	if len(entry.Ingredients) != 1 {
		t.Fatalf("expected 1 ingredient, got %d", len(entry.Ingredients))
	}
	if entry.Category != model.CategoryMainDish {
		t.Fatalf("unexpected category %q", entry.Category)
	}

	snap := st.Snapshot()
	recent := service.RecentEntries(snap.FoodEntries, 3)
	if len(recent) != 1 || recent[0].ID != entry.ID {
		t.Fatalf("expected submitted entry at the head of the recent list")
	}

	// Submit resets the form for the next entry.
	if form.MealName != "" || form.Category != "" || len(form.Ingredients) != 1 {
		t.Fatalf("expected blank form after submit")
	}
}

func TestWaterFormSubmitWithoutIngredients(t *testing.T) {
	t.Parallel()

	st := store.New()
	form := service.NewWaterEntryForm()
	form.EntryName = "Morning hydration"
	form.Ingredients = nil

	entry, err := form.Submit(st)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.TotalVolume != nil {
		t.Fatalf("expected unknown volume, got %v", *entry.TotalVolume)
	}

	snap := st.Snapshot()
	recent := service.RecentEntries(snap.WaterEntries, 3)
	if len(recent) != 1 || recent[0].EntryName != "Morning hydration" {
		t.Fatalf("expected entry visible in the water recent list")
	}
}

func TestWaterFormRequiresName(t *testing.T) {
	t.Parallel()

	st := store.New()
	form := service.NewWaterEntryForm()
	if _, err := form.Submit(st); err == nil {
		t.Fatalf("expected name validation error")
	}
	if len(st.Snapshot().WaterEntries) != 0 {
		t.Fatalf("invalid form must not append to the store")
	}
}
