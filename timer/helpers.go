package timer

import (
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
	"github.com/AlekseyPolishchuk/time-tracker/internal/timeutil"
)

// displayClock formats the value the timer should show at the last
// observed instant.
func (w *Widget) displayClock() string {
	return timeutil.FormatTime(w.state.Elapsed(w.now))
}

// currentNote returns the note under the cursor, or nil.
func (w *Widget) currentNote() *models.Note {
	if w.noteCursor < 0 || w.noteCursor >= len(w.state.Notes) {
		return nil
	}

	return &w.state.Notes[w.noteCursor]
}

// clampCursors keeps the list cursors in range after a snapshot
// update removed entries.
func (w *Widget) clampCursors() {
	if w.cursor >= len(w.state.Trackers) {
		w.cursor = len(w.state.Trackers) - 1
	}

	if w.cursor < 0 {
		w.cursor = 0
	}

	if w.noteCursor >= len(w.state.Notes) {
		w.noteCursor = len(w.state.Notes) - 1
	}

	if w.noteCursor < 0 {
		w.noteCursor = 0
	}

	if n := w.currentNote(); n == nil || !n.IsTodo() {
		w.itemCursor = -1
	} else if w.itemCursor >= len(n.Items) {
		w.itemCursor = len(n.Items) - 1
	}
}

// savedHook runs the configured side effects of saving a tracker: a
// desktop notification and the save_cmd shell hook. Failures are
// logged, never surfaced.
func (w *Widget) savedHook(name string) tea.Cmd {
	notify := w.opts.Settings.Notify
	saveCmd := w.opts.Settings.SaveCmd

	return func() tea.Msg {
		if notify {
			err := beeep.Notify(appTitle, "Saved "+name, "")
			if err != nil {
				slog.Warn("notification failed", "error", err)
			}
		}

		if saveCmd != "" {
			runSaveCmd(saveCmd)
		}

		return nil
	}
}

// runSaveCmd executes the user-configured command.
func runSaveCmd(saveCmd string) {
	cmdSlice, err := shellquote.Split(saveCmd)
	if err != nil {
		slog.Warn("unable to parse save_cmd option", "error", err)
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		slog.Warn("save_cmd failed", "error", err)
	}
}
