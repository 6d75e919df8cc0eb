// Package stats reports tracker activity statistics
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
	"github.com/AlekseyPolishchuk/time-tracker/internal/timeutil"
)

const (
	barChartChar   = "▇"
	noActivityMsg  = "-"
	reportTitle    = "Weekly Activity"
	maxBarChartLen = 24
)

// DayStat is one day of the rolling weekly summary.
type DayStat struct {
	// Label is "Today", "Yesterday", or a weekday name.
	Label string

	// TotalSeconds is the summed time of every tracker created on
	// this day.
	TotalSeconds int

	// Hourly buckets each tracker's full time into the hour of day it
	// was created in.
	Hourly [timeutil.HoursInADay]int
}

// Weekly derives the trailing 7-day activity summary from the tracker
// list. Index 0 is today; days are local-time, midnight-aligned. Days
// without any trackers yield zeroed entries, so the result always has
// exactly 7 entries.
func Weekly(trackers []models.Tracker, now time.Time) []DayStat {
	week := make([]DayStat, timeutil.DaysInAWeek)

	for daysAgo := range week {
		dayStart := timeutil.RoundToStart(now.AddDate(0, 0, -daysAgo))
		nextDay := dayStart.AddDate(0, 0, 1)

		day := DayStat{
			Label: timeutil.DayLabel(daysAgo, now),
		}

		for i := range trackers {
			tr := &trackers[i]

			createdAt, err := time.Parse(time.RFC3339, tr.CreatedAt)
			if err != nil {
				continue
			}

			createdAt = createdAt.In(now.Location())

			if createdAt.Before(dayStart) || !createdAt.Before(nextDay) {
				continue
			}

			day.TotalSeconds += tr.Time
			day.Hourly[createdAt.Hour()] += tr.Time
		}

		week[daysAgo] = day
	}

	return week
}

// BarLength scales a day's total against the week's busiest day.
func BarLength(total, max, width int) int {
	if max == 0 || total == 0 {
		return 0
	}

	n := total * width / max
	if n == 0 {
		n = 1
	}

	return n
}

// Render writes the weekly report to w.
func Render(w io.Writer, week []DayStat) {
	maxTotal := 0

	for _, day := range week {
		if day.TotalSeconds > maxTotal {
			maxTotal = day.TotalSeconds
		}
	}

	fmt.Fprintln(w, pterm.DefaultSection.Sprint(reportTitle))

	for _, day := range week {
		bar := ""

		for range BarLength(day.TotalSeconds, maxTotal, maxBarChartLen) {
			bar += barChartChar
		}

		total := noActivityMsg
		if day.TotalSeconds > 0 {
			total = timeutil.FormatWeeklyTime(day.TotalSeconds)
		}

		fmt.Fprintf(
			w,
			"%-10s %-24s %s\n",
			day.Label,
			pterm.Green(bar),
			total,
		)
	}
}

// Show prints the weekly summary for the given trackers, anchored at
// now.
func Show(w io.Writer, trackers []models.Tracker, now time.Time) {
	Render(w, Weekly(trackers, now))
}
