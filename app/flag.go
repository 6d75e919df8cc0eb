package app

import "github.com/urfave/cli/v2"

var (
	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Anchor the weekly report at a past `DATE` (e.g. '3 days ago')",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort the tracker list by 'name' or 'time' (default: newest first)",
	}

	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Delete all saved trackers",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}
)
