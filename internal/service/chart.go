package service

import (
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/model"
)

// TrendSeries is one chart-ready window of day buckets: a label and a value
// per day, oldest first, always the same length.
type TrendSeries struct {
	Labels []string
	Values []float64
}

// Max returns the largest value in the series, with a floor of 1 so scaling
// a bar or line against it never divides by zero.
func (s TrendSeries) Max() float64 {
	max := 1.0
	for _, v := range s.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// CalorieTrend builds the daily calorie series for the trailing window
// ending on reference's day.
func CalorieTrend(entries []model.FoodEntry, windowDays int, reference time.Time) TrendSeries {
	return TrendSeries{
		Labels: DayLabels(windowDays, reference),
		Values: DailyTotals(entries, EntryCalories, windowDays, reference),
	}
}

// VolumeTrend builds the daily water-volume series for the trailing window
// ending on reference's day.
func VolumeTrend(entries []model.WaterEntry, windowDays int, reference time.Time) TrendSeries {
	return TrendSeries{
		Labels: DayLabels(windowDays, reference),
		Values: DailyTotals(entries, EntryVolume, windowDays, reference),
	}
}
