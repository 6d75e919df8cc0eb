package app

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/maruel/natural"
	"github.com/urfave/cli/v2"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
	"github.com/AlekseyPolishchuk/time-tracker/internal/timeutil"
	"github.com/AlekseyPolishchuk/time-tracker/internal/ui"
)

const trackerListTimeFormat = "Jan 02, 2006 03:04:05 PM"

func listAction(ctx *cli.Context) error {
	if err := initConfig(false); err != nil {
		return err
	}

	s, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	trackers := s.Snapshot().Trackers

	switch ctx.String("sort") {
	case "name":
		sort.SliceStable(trackers, func(i, j int) bool {
			return natural.Less(trackers[i].Name, trackers[j].Name)
		})
	case "time":
		sort.SliceStable(trackers, func(i, j int) bool {
			return trackers[i].Time > trackers[j].Time
		})
	}

	printTrackers(trackers)

	return nil
}

func printTrackers(trackers []models.Tracker) {
	if len(trackers) == 0 {
		fmt.Fprintln(os.Stdout, "No saved trackers yet.")
		return
	}

	tableBody := make([][]string, len(trackers))

	for i := range trackers {
		tr := &trackers[i]

		created := tr.CreatedAt
		if t, err := time.Parse(time.RFC3339, tr.CreatedAt); err == nil {
			created = t.Local().Format(trackerListTimeFormat)
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", tr.ID),
			tr.Name,
			ui.Green(timeutil.FormatTime(tr.Time)),
			created,
		}
	}

	tableBody = append([][]string{
		{"ID", "NAME", "TIME", "CREATED"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)
}
