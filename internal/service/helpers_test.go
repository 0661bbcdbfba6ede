package service_test

import (
	"testing"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
	"github.com/jamundie/FoodTrackerApp/internal/service"
)

func floatPtr(v float64) *float64 {
	return &v
}

// timestampAt composes an entry timestamp on the given UTC calendar day so
// day-bucket assertions are independent of the host timezone.
func timestampAt(year int, month time.Month, day, hours, minutes int) string {
	return service.ComposeTimestamp(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), hours, minutes)
}

func foodEntryAt(t *testing.T, name string, timestamp string, calories *float64) model.FoodEntry {
	t.Helper()
	entry := service.BuildFoodEntry(name, model.CategoryLunch, timestamp, nil)
	entry.TotalCalories = calories
	return entry
}

func waterEntryAt(t *testing.T, name string, timestamp string, volume *float64) model.WaterEntry {
	t.Helper()
	entry := service.BuildWaterEntry(name, timestamp, nil)
	entry.TotalVolume = volume
	return entry
}
