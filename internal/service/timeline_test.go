package service_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
	"github.com/jamundie/FoodTrackerApp/internal/service"
)

func TestRecentEntriesOrdersMostRecentFirst(t *testing.T) {
	t.Parallel()

	entries := []model.FoodEntry{
		foodEntryAt(t, "T2", timestampAt(2026, 2, 10, 12, 0), nil),
		foodEntryAt(t, "T4", timestampAt(2026, 2, 11, 8, 0), nil),
		foodEntryAt(t, "T1", timestampAt(2026, 2, 10, 8, 0), nil),
		foodEntryAt(t, "T3", timestampAt(2026, 2, 10, 19, 0), nil),
	}
	got := service.RecentEntries(entries, 3)
	names := []string{got[0].MealName, got[1].MealName, got[2].MealName}
	if !reflect.DeepEqual(names, []string{"T4", "T3", "T2"}) {
		t.Fatalf("expected [T4 T3 T2], got %v", names)
	}
	if entries[0].MealName != "T2" {
		t.Fatalf("input slice must not be mutated, first entry is now %q", entries[0].MealName)
	}
}

func TestRecentEntriesEmptyAndOversizedLimits(t *testing.T) {
	t.Parallel()

	if got := service.RecentEntries([]model.WaterEntry{}, 3); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	entries := []model.WaterEntry{
		waterEntryAt(t, "Only", timestampAt(2026, 2, 10, 7, 0), nil),
	}
	if got := service.RecentEntries(entries, 10); len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
}

func TestDailyTotalsEmptyWindowHasNoGaps(t *testing.T) {
	t.Parallel()

	reference := time.Date(2026, 2, 12, 18, 0, 0, 0, time.UTC)
	got := service.DailyTotals(nil, service.EntryCalories, 7, reference)
	if !reflect.DeepEqual(got, []float64{0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("expected seven zero buckets, got %v", got)
	}
}

func TestDailyTotalsBucketsByCalendarDay(t *testing.T) {
	t.Parallel()

	reference := time.Date(2026, 2, 12, 18, 0, 0, 0, time.UTC)
	entries := []model.FoodEntry{
		// Reference day, two entries.
		foodEntryAt(t, "Breakfast", timestampAt(2026, 2, 12, 0, 0), floatPtr(300)),
		foodEntryAt(t, "Dinner", timestampAt(2026, 2, 12, 23, 59), floatPtr(700)),
		// Start of the window.
		foodEntryAt(t, "OldLunch", timestampAt(2026, 2, 6, 12, 0), floatPtr(450)),
		// One day before the window, ignored entirely.
		foodEntryAt(t, "TooOld", timestampAt(2026, 2, 5, 12, 0), floatPtr(999)),
		// Unknown total counts as zero.
		foodEntryAt(t, "Unknown", timestampAt(2026, 2, 12, 12, 0), nil),
	}
	got := service.DailyTotals(entries, service.EntryCalories, 7, reference)
	want := []float64{450, 0, 0, 0, 0, 0, 1000}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDailyTotalsIsIdempotent(t *testing.T) {
	t.Parallel()

	reference := time.Date(2026, 2, 12, 18, 0, 0, 0, time.UTC)
	entries := []model.WaterEntry{
		waterEntryAt(t, "Morning", timestampAt(2026, 2, 12, 7, 0), floatPtr(510)),
		waterEntryAt(t, "Midday", timestampAt(2026, 2, 11, 11, 30), floatPtr(400)),
	}
	first := service.DailyTotals(entries, service.EntryVolume, 7, reference)
	second := service.DailyTotals(entries, service.EntryVolume, 7, reference)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
}

func TestDayLabelsMatchBucketOrder(t *testing.T) {
	t.Parallel()

	// 2026-02-12 is a Thursday; the oldest bucket is the previous Friday.
	reference := time.Date(2026, 2, 12, 18, 0, 0, 0, time.UTC)
	got := service.DayLabels(7, reference)
	want := []string{"Fri", "Sat", "Sun", "Mon", "Tue", "Wed", "Thu"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTrendSeriesMaxHasFloorOfOne(t *testing.T) {
	t.Parallel()

	reference := time.Date(2026, 2, 12, 18, 0, 0, 0, time.UTC)
	series := service.CalorieTrend(nil, 7, reference)
	if len(series.Values) != 7 || len(series.Labels) != 7 {
		t.Fatalf("expected 7 labels and values, got %d/%d", len(series.Labels), len(series.Values))
	}
	if series.Max() != 1 {
		t.Fatalf("expected max floor of 1, got %v", series.Max())
	}
}
