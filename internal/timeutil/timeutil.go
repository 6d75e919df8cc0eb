// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"
)

const (
	secondsInMinute = 60
	secondsInHour   = 3600
)

// HoursInADay is the number of hourly buckets in a daily activity chart.
const HoursInADay = 24

// DaysInAWeek is the length of the rolling activity window.
const DaysInAWeek = 7

// FormatTime expresses a seconds value as a zero-padded HH:MM:SS clock
// string.
func FormatTime(totalSeconds int) string {
	hours := totalSeconds / secondsInHour
	minutes := (totalSeconds % secondsInHour) / secondsInMinute
	seconds := totalSeconds % secondsInMinute

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatWeeklyTime expresses a seconds value as "Xh YYmin", truncating
// leftover seconds.
func FormatWeeklyTime(seconds int) string {
	hours := seconds / secondsInHour
	minutes := (seconds % secondsInHour) / secondsInMinute

	return fmt.Sprintf("%dh %02dmin", hours, minutes)
}

// DayLabel returns the display label for a day the given number of days
// before now: "Today", "Yesterday", or the weekday name.
func DayLabel(daysAgo int, now time.Time) string {
	switch daysAgo {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	}

	return now.AddDate(0, 0, -daysAgo).Weekday().String()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// ToTimestamp formats a time value the way tracker and note creation
// timestamps are persisted.
func ToTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
