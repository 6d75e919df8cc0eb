// Package app defines the command-line interface of the tracker
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/AlekseyPolishchuk/time-tracker/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tracker app instance.
func Get() *cli.App {
	trackerApp := &cli.App{
		Name: "tracker",
		Usage: `
		Tracker is a personal time-tracking widget for the terminal: a
		running stopwatch, named saved time records, notes and
		checklists, and a rolling 7-day activity summary.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Print the saved trackers",
				Action: listAction,
				Flags:  []cli.Flag{sortFlag, noColorFlag},
			},
			{
				Name:   "stats",
				Usage:  "Print the rolling 7-day activity summary",
				Action: statsAction,
				Flags:  []cli.Flag{sinceFlag, noColorFlag},
			},
			{
				Name:   "notes",
				Usage:  "Print the saved notes and checklists",
				Action: notesAction,
				Flags:  []cli.Flag{noColorFlag},
			},
			{
				Name:      "delete",
				Usage:     "Delete saved trackers",
				UsageText: "tracker delete [ID...] [--all]",
				Action:    deleteAction,
				Flags:     []cli.Flag{allFlag},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  []cli.Flag{noColorFlag},
		Action: defaultAction,
		Before: beforeAction,
	}

	return trackerApp
}
