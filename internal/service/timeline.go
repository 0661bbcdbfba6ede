package service

import (
	"sort"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
)

// The activity feed and the trend chart both need chronological views over
// the same insertion-ordered store, so the sort and day-window logic lives
// here once and both consumers share it.

// RecentEntries returns at most maxCount entries ordered most recent first.
// The input is never mutated; entries with identical timestamps keep their
// insertion order.
func RecentEntries[E model.Timed](entries []E, maxCount int) []E {
	sorted := make([]E, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseTimestamp(sorted[i].EntryTimestamp()).After(ParseTimestamp(sorted[j].EntryTimestamp()))
	})
	if maxCount < 0 {
		maxCount = 0
	}
	if len(sorted) > maxCount {
		sorted = sorted[:maxCount]
	}
	return sorted
}

// DailyTotals buckets entries into windowDays calendar days ending on
// reference's day, oldest bucket first, and sums valueOf over each bucket.
// A bucket spans [midnight, next midnight) in reference's location. Entries
// outside the window are ignored; empty buckets are 0, never a gap.
func DailyTotals[E model.Timed](entries []E, valueOf func(E) float64, windowDays int, reference time.Time) []float64 {
	totals := make([]float64, 0, windowDays)
	for k := windowDays - 1; k >= 0; k-- {
		dayStart := beginningOfDay(reference).AddDate(0, 0, -k)
		dayEnd := dayStart.AddDate(0, 0, 1)
		var total float64
		for _, entry := range entries {
			ts := ParseTimestamp(entry.EntryTimestamp())
			if !ts.Before(dayStart) && ts.Before(dayEnd) {
				total += valueOf(entry)
			}
		}
		totals = append(totals, total)
	}
	return totals
}

// DayLabels returns the short weekday name for each DailyTotals bucket in
// the same oldest-first order.
func DayLabels(windowDays int, reference time.Time) []string {
	labels := make([]string, 0, windowDays)
	for k := windowDays - 1; k >= 0; k-- {
		day := beginningOfDay(reference).AddDate(0, 0, -k)
		labels = append(labels, day.Weekday().String()[:3])
	}
	return labels
}

// EntryCalories is the DailyTotals reader for food entries, treating an
// unknown total as 0.
func EntryCalories(e model.FoodEntry) float64 {
	if e.TotalCalories == nil {
		return 0
	}
	return *e.TotalCalories
}

// EntryVolume is the DailyTotals reader for water entries, treating an
// unknown total as 0.
func EntryVolume(e model.WaterEntry) float64 {
	if e.TotalVolume == nil {
		return 0
	}
	return *e.TotalVolume
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
