package service

import (
	"fmt"
	"time"
)

// timestampLayout is the ISO-8601 instant form entries carry, always UTC
// with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ComposeTimestamp combines the calendar day of date with a wall-clock
// time-of-day into one UTC instant string. Any time-of-day already on date
// is discarded; seconds and below are zeroed. Out-of-range hour or minute
// values are normalized by date arithmetic rather than rejected (29:30 on
// the 1st becomes 05:30 on the 2nd), since the picker feeding this function
// is expected to pre-validate.
func ComposeTimestamp(date time.Time, hours, minutes int) string {
	y, m, d := date.Date()
	combined := time.Date(y, m, d, hours, minutes, 0, 0, date.Location())
	return combined.UTC().Format(timestampLayout)
}

// ParseTimestamp reads an entry timestamp back into a time. Malformed
// timestamps yield the zero time, which sorts to the far past instead of
// failing a render.
func ParseTimestamp(timestamp string) time.Time {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDisplayDate renders a picker date for display: "Today" when date and
// now share a calendar day, otherwise a short date like "Sat, Aug 30".
func FormatDisplayDate(date, now time.Time) string {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return date.Format("Mon, Jan 2")
}

// FormatDisplayTime renders a picker time on a 12-hour clock, e.g. "2:30 PM".
func FormatDisplayTime(hours, minutes int) string {
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours > 12:
		display = hours - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, period)
}

// RelativeTime renders how long ago an entry happened: "Just now" under a
// minute, then minutes, then hours, then the clock time for anything a day
// old or older. Malformed timestamps render as "--".
func RelativeTime(timestamp string, now time.Time) string {
	t := ParseTimestamp(timestamp)
	if t.IsZero() {
		return "--"
	}
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return t.Local().Format("15:04")
	}
}
