package foodtracker

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/service"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

const trendBarWidth = 30

func printActivities(out io.Writer, snap store.Snapshot, limit int, now time.Time) {
	feed := service.ActivityFeed(snap.FoodEntries, snap.WaterEntries, limit)
	fmt.Fprintln(out, "Recent Activities")
	if len(feed) == 0 {
		fmt.Fprintln(out, "No activities yet. Start tracking your food and water intake!")
		return
	}
	for _, a := range feed {
		fmt.Fprintf(out, "%s %s\t%s\t%s\n", a.Icon, a.Title, a.Subtitle, service.RelativeTime(a.Timestamp, now))
	}
}

func printTrend(out io.Writer, title, unit string, series service.TrendSeries) {
	fmt.Fprintln(out, title)
	max := series.Max()
	for i, label := range series.Labels {
		value := series.Values[i]
		bar := strings.Repeat("#", int(math.Round(value/max*trendBarWidth)))
		fmt.Fprintf(out, "%s %7.0f %s %s\n", label, value, unit, bar)
	}
}

func printTrends(out io.Writer, snap store.Snapshot, windowDays int, now time.Time) {
	printTrend(out, fmt.Sprintf("Daily Calorie Intake (Last %d Days)", windowDays), "cal",
		service.CalorieTrend(snap.FoodEntries, windowDays, now))
	fmt.Fprintln(out)
	printTrend(out, fmt.Sprintf("Daily Water Volume (Last %d Days)", windowDays), "ml",
		service.VolumeTrend(snap.WaterEntries, windowDays, now))
}

func printStatus(out io.Writer, snap store.Snapshot) {
	fmt.Fprintf(out, "Water glasses: %d\n", snap.WaterIntake)
	fmt.Fprintf(out, "Food entries: %d\n", len(snap.FoodEntries))
	fmt.Fprintf(out, "Water entries: %d\n", len(snap.WaterEntries))
}
