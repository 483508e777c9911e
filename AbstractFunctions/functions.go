package AbstractFunctions

import (
	"fmt"
	"strings"
	"time"

	"Momentum/Models"
)

const dayLayout = "2006-01-02"

// DayString truncates a time to its local calendar day.
func DayString(t time.Time) string {
	return t.Local().Format(dayLayout)
}

// NormalizeDay reduces a date value to a yyyy-MM-dd calendar-day string.
// Accepts plain day strings, RFC3339 timestamps and the backend's
// millisecond variant. A plain day string is already normalized and comes
// back unchanged; timestamps keep the day of their own offset, so the
// result never depends on the host timezone. Unparseable input is
// returned trimmed as-is so a bad date compares equal only to itself.
func NormalizeDay(value string) string {
	value = strings.TrimSpace(value)
	if _, err := time.Parse(dayLayout, value); err == nil {
		return value
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dayLayout)
		}
	}
	return value
}

// SameCalendarDay reports whether two times fall on the same local day.
func SameCalendarDay(a, b time.Time) bool {
	return DayString(a) == DayString(b)
}

// GetScheduleForDate returns the schedule planned for the given date, or
// nil when none exists. A nil result is the expected empty case, not an
// error; callers render an empty state. Both sides are normalized to the
// calendar day before comparing.
func GetScheduleForDate(date string, schedules []Models.DailySchedule) *Models.DailySchedule {
	want := NormalizeDay(date)
	for i := range schedules {
		if NormalizeDay(schedules[i].Date) == want {
			return &schedules[i]
		}
	}
	return nil
}

// NextMidnight returns the start of the next local calendar day after now.
func NextMidnight(now time.Time) time.Time {
	now = now.Local()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// FormatCountdown renders seconds as MM:SS for the pomodoro view.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatTimeOfDay renders a timestamp as HH:MM for time inputs.
func FormatTimeOfDay(t time.Time) string {
	return t.Local().Format("15:04")
}
