package app

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func deleteAction(ctx *cli.Context) error {
	if err := initConfig(false); err != nil {
		return err
	}

	s, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if ctx.Bool("all") {
		var confirmed bool

		err := huh.NewConfirm().
			Title("Delete all saved trackers?").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if confirmed {
			s.ClearTrackers()
			pterm.Success.Println("All trackers deleted")
		}

		return nil
	}

	if ctx.Args().Len() == 0 {
		return fmt.Errorf("provide at least one tracker id, or --all")
	}

	for _, arg := range ctx.Args().Slice() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid tracker id: %q", arg)
		}

		s.DeleteTracker(id)
	}

	return nil
}
