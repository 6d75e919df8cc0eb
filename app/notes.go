package app

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/AlekseyPolishchuk/time-tracker/internal/ui"
)

func notesAction(ctx *cli.Context) error {
	if err := initConfig(false); err != nil {
		return err
	}

	s, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	notes := s.Snapshot().Notes

	if len(notes) == 0 {
		fmt.Fprintln(os.Stdout, "No notes yet.")
		return nil
	}

	for i := range notes {
		n := &notes[i]

		if !n.IsTodo() {
			fmt.Fprintf(os.Stdout, "%s %s\n", ui.Cyan("•"), n.Content)
			continue
		}

		fmt.Fprintln(os.Stdout, ui.Highlight(n.Title))

		for _, item := range n.Items {
			box := "[ ]"
			if item.Completed {
				box = ui.Green("[x]")
			}

			fmt.Fprintf(os.Stdout, "  %s %s\n", box, item.Text)
		}
	}

	return nil
}
