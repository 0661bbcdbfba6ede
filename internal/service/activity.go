package service

import (
	"fmt"
	"math"

	"github.com/jamundie/FoodTrackerApp/internal/model"
)

// DefaultActivityLimit caps the activity feed when the caller does not ask
// for a specific length.
const DefaultActivityLimit = 10

// Activity is one row of the recent-activity feed, a presentation-ready
// projection of either entry kind.
type Activity struct {
	ID        string
	Kind      string
	Timestamp string
	Title     string
	Subtitle  string
	Icon      string
}

// EntryTimestamp implements the timeline ordering hook.
func (a Activity) EntryTimestamp() string { return a.Timestamp }

// ActivityFeed merges food and water entries into one feed ordered most
// recent first and capped at maxEntries. Totals appear in the subtitle
// rounded to whole calories/milliliters, and only when known.
func ActivityFeed(food []model.FoodEntry, water []model.WaterEntry, maxEntries int) []Activity {
	if maxEntries <= 0 {
		maxEntries = DefaultActivityLimit
	}
	activities := make([]Activity, 0, len(food)+len(water))
	for _, entry := range food {
		subtitle := fmt.Sprintf("%s • %d ingredients", entry.Category, len(entry.Ingredients))
		if entry.TotalCalories != nil {
			subtitle += fmt.Sprintf(" • %d cal", int(math.Round(*entry.TotalCalories)))
		}
		activities = append(activities, Activity{
			ID:        entry.ID,
			Kind:      "food",
			Timestamp: entry.Timestamp,
			Title:     "Logged " + entry.MealName,
			Subtitle:  subtitle,
			Icon:      "🍳",
		})
	}
	for _, entry := range water {
		subtitle := fmt.Sprintf("%d ingredients", len(entry.Ingredients))
		if entry.TotalVolume != nil {
			subtitle += fmt.Sprintf(" • %dml", int(math.Round(*entry.TotalVolume)))
		}
		activities = append(activities, Activity{
			ID:        entry.ID,
			Kind:      "water",
			Timestamp: entry.Timestamp,
			Title:     entry.EntryName,
			Subtitle:  subtitle,
			Icon:      "💧",
		})
	}
	return RecentEntries(activities, maxEntries)
}
