package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

// TimeOfDay is the wall-clock half of the timestamp pickers.
type TimeOfDay struct {
	Hours   int
	Minutes int
}

// FoodEntryForm collects the raw state of the food-entry screen: free-text
// metadata, the date and time picks, and the editable ingredient rows. The
// form is the validation gate; the builders behind Submit assume validated
// input.
type FoodEntryForm struct {
	MealName     string
	Category     string
	SelectedDate time.Time
	SelectedTime TimeOfDay
	Ingredients  []RawIngredient

	policy CategoryPolicy
}

// NewFoodEntryForm returns a blank food form with one empty ingredient row,
// today's date and the current hour preselected. The policy decides which
// categories Validate accepts.
func NewFoodEntryForm(policy CategoryPolicy) *FoodEntryForm {
	f := &FoodEntryForm{policy: policy}
	f.Reset()
	return f
}

// AddIngredientRow appends a blank row.
func (f *FoodEntryForm) AddIngredientRow() {
	f.Ingredients = append(f.Ingredients, RawIngredient{Unit: model.UnitGrams})
}

// UpdateIngredientRow replaces the row at index.
func (f *FoodEntryForm) UpdateIngredientRow(index int, row RawIngredient) error {
	if index < 0 || index >= len(f.Ingredients) {
		return fmt.Errorf("ingredient row %d does not exist", index)
	}
	f.Ingredients[index] = row
	return nil
}

// RemoveIngredientRow deletes the row at index. The form always keeps at
// least one row, so removing the last remaining row is a no-op.
func (f *FoodEntryForm) RemoveIngredientRow(index int) {
	if index < 0 || index >= len(f.Ingredients) || len(f.Ingredients) == 1 {
		return
	}
	f.Ingredients = append(f.Ingredients[:index], f.Ingredients[index+1:]...)
}

// Validate applies the submission gates: a meal name, a category the policy
// accepts, and at least one ingredient row with both a name and an amount.
func (f *FoodEntryForm) Validate() error {
	if strings.TrimSpace(f.MealName) == "" {
		return fmt.Errorf("meal name is required")
	}
	if err := f.policy.Validate(f.Category); err != nil {
		return err
	}
	for _, row := range f.Ingredients {
		if strings.TrimSpace(row.Name) != "" && strings.TrimSpace(row.Amount) != "" {
			return nil
		}
	}
	return fmt.Errorf("at least one ingredient with a name and an amount is required")
}

// Submit validates the form, assembles the entry, appends it to the store
// and resets the form for the next entry. The built entry is returned for
// display.
func (f *FoodEntryForm) Submit(st *store.Store) (model.FoodEntry, error) {
	if err := f.Validate(); err != nil {
		return model.FoodEntry{}, err
	}
	ingredients := BuildIngredients(f.Ingredients)
	timestamp := ComposeTimestamp(f.SelectedDate, f.SelectedTime.Hours, f.SelectedTime.Minutes)
	entry := BuildFoodEntry(f.MealName, model.FoodCategory(strings.TrimSpace(f.Category)), timestamp, ingredients)
	st.AppendFoodEntry(entry)
	f.Reset()
	return entry, nil
}

// Reset returns the form to its blank state.
func (f *FoodEntryForm) Reset() {
	now := time.Now()
	f.MealName = ""
	f.Category = ""
	f.SelectedDate = now
	f.SelectedTime = TimeOfDay{Hours: now.Hour()}
	f.Ingredients = []RawIngredient{{Unit: model.UnitGrams}}
}

// WaterEntryForm collects the raw state of the water-entry screen. Unlike
// the food form it requires only a name; an entry without ingredients is
// valid and simply has no known volume.
type WaterEntryForm struct {
	EntryName    string
	SelectedDate time.Time
	SelectedTime TimeOfDay
	Ingredients  []RawIngredient
}

// NewWaterEntryForm returns a blank water form with one empty
// milliliter row preselected.
func NewWaterEntryForm() *WaterEntryForm {
	f := &WaterEntryForm{}
	f.Reset()
	return f
}

// AddIngredientRow appends a blank milliliter row.
func (f *WaterEntryForm) AddIngredientRow() {
	f.Ingredients = append(f.Ingredients, RawIngredient{Unit: model.UnitMilliliters})
}

// UpdateIngredientRow replaces the row at index.
func (f *WaterEntryForm) UpdateIngredientRow(index int, row RawIngredient) error {
	if index < 0 || index >= len(f.Ingredients) {
		return fmt.Errorf("ingredient row %d does not exist", index)
	}
	f.Ingredients[index] = row
	return nil
}

// RemoveIngredientRow deletes the row at index, always keeping one row.
func (f *WaterEntryForm) RemoveIngredientRow(index int) {
	if index < 0 || index >= len(f.Ingredients) || len(f.Ingredients) == 1 {
		return
	}
	f.Ingredients = append(f.Ingredients[:index], f.Ingredients[index+1:]...)
}

// Validate requires a non-empty entry name.
func (f *WaterEntryForm) Validate() error {
	if strings.TrimSpace(f.EntryName) == "" {
		return fmt.Errorf("water entry name is required")
	}
	return nil
}

// Submit validates the form, assembles the entry, appends it to the store
// and resets the form.
func (f *WaterEntryForm) Submit(st *store.Store) (model.WaterEntry, error) {
	if err := f.Validate(); err != nil {
		return model.WaterEntry{}, err
	}
	ingredients := BuildIngredients(f.Ingredients)
	timestamp := ComposeTimestamp(f.SelectedDate, f.SelectedTime.Hours, f.SelectedTime.Minutes)
	entry := BuildWaterEntry(f.EntryName, timestamp, ingredients)
	st.AppendWaterEntry(entry)
	f.Reset()
	return entry, nil
}

// Reset returns the form to its blank state.
func (f *WaterEntryForm) Reset() {
	now := time.Now()
	f.EntryName = ""
	f.SelectedDate = now
	f.SelectedTime = TimeOfDay{Hours: now.Hour()}
	f.Ingredients = []RawIngredient{{Unit: model.UnitMilliliters}}
}
