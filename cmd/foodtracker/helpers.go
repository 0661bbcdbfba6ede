package foodtracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/jamundie/FoodTrackerApp/internal/service"
)

// parseDateOr parses a YYYY-MM-DD form value, falling back when it is blank.
func parseDateOr(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

// parseClockOr parses an HH:MM form value, falling back when it is blank.
func parseClockOr(value string, fallback service.TimeOfDay) (service.TimeOfDay, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return service.TimeOfDay{}, fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	return service.TimeOfDay{Hours: t.Hour(), Minutes: t.Minute()}, nil
}
