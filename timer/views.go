package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/AlekseyPolishchuk/time-tracker/internal/timeutil"
	"github.com/AlekseyPolishchuk/time-tracker/stats"
)

const (
	emptyTrackersMsg = "No saved trackers yet. Add one above!"
	chartWidth       = 24
)

func (w *Widget) View() string {
	var s strings.Builder

	s.WriteString(w.tabsView())
	s.WriteString("\n\n")

	switch w.view {
	case viewTimer:
		s.WriteString(w.timerView())
	case viewNotes:
		s.WriteString(w.notesView())
	case viewStats:
		s.WriteString(w.statsView())
	}

	if w.confirmingClear {
		s.WriteString("\n")
		s.WriteString(w.style.accent.Render("Clear everything in this tab? (y/esc)"))
	}

	s.WriteString("\n")
	s.WriteString(w.help.ShortHelpView(w.shortHelp()))

	return s.String()
}

func (w *Widget) tabsView() string {
	names := []string{"Timer", "Notes", "Stats"}

	tabs := make([]string, len(names))
	for i, name := range names {
		if view(i) == w.view {
			tabs[i] = w.style.selected.Render(name)
		} else {
			tabs[i] = w.style.muted.Render(name)
		}
	}

	return w.style.dot.String() + " " + strings.Join(tabs, w.style.muted.Render(" · "))
}

func (w *Widget) timerView() string {
	var s strings.Builder

	s.WriteString(w.style.clock.Render(w.displayClock()))

	if w.state.IsRunning {
		s.WriteString(w.style.accent.Render("  [Running]"))
	} else {
		s.WriteString(w.style.muted.Render("  [Paused]"))
	}

	s.WriteString("\n\n")

	if w.focus == focusName {
		s.WriteString(w.nameInput.View())
	} else {
		name := w.state.ActiveTrackerName
		if name == "" {
			name = w.style.muted.Render(w.nameInput.Placeholder)
		}

		s.WriteString(name)
	}

	s.WriteString("\n\n")
	s.WriteString(w.style.title.Render("Saved Trackers"))
	s.WriteString("\n")

	if len(w.state.Trackers) == 0 {
		s.WriteString(w.style.muted.Render(emptyTrackersMsg))
		s.WriteString("\n")

		return s.String()
	}

	for i, tr := range w.state.Trackers {
		cursor := "  "
		if i == w.cursor {
			cursor = w.style.accent.Render("> ")
		}

		line := fmt.Sprintf("%s  %s", timeutil.FormatTime(tr.Time), tr.Name)

		if w.state.ActiveTrackerID != nil && *w.state.ActiveTrackerID == tr.ID {
			line += w.style.accent.Render("  (editing)")
		}

		s.WriteString(cursor + line + "\n")
	}

	return s.String()
}

func (w *Widget) notesView() string {
	var s strings.Builder

	s.WriteString(w.style.title.Render("Notes"))
	s.WriteString("\n")

	if len(w.state.Notes) == 0 {
		s.WriteString(w.style.muted.Render("No notes yet."))
		s.WriteString("\n")
	}

	for i := range w.state.Notes {
		n := &w.state.Notes[i]

		cursor := "  "
		if i == w.noteCursor {
			cursor = w.style.accent.Render("> ")
		}

		if !n.IsTodo() {
			s.WriteString(cursor + n.Content + "\n")
			continue
		}

		title := w.style.title.Render(n.Title)
		if i == w.noteCursor && w.itemCursor < 0 {
			title = w.style.selected.Render(n.Title)
		}

		s.WriteString(cursor + title + "\n")

		for j, item := range n.Items {
			box := "[ ]"
			text := item.Text

			if item.Completed {
				box = "[x]"
				text = w.style.done.Render(text)
			}

			marker := "    "
			if i == w.noteCursor && j == w.itemCursor {
				marker = "  " + w.style.accent.Render("> ")
			}

			s.WriteString(fmt.Sprintf("%s%s %s\n", marker, box, text))
		}
	}

	if w.focus == focusNote {
		s.WriteString("\n")
		s.WriteString(w.noteInput.View())
		s.WriteString("\n")
	}

	return s.String()
}

func (w *Widget) statsView() string {
	var s strings.Builder

	s.WriteString(w.style.title.Render("Weekly Activity"))
	s.WriteString("\n")

	week := stats.Weekly(w.state.Trackers, w.now)

	maxTotal := 0
	for _, day := range week {
		if day.TotalSeconds > maxTotal {
			maxTotal = day.TotalSeconds
		}
	}

	for _, day := range week {
		bar := strings.Repeat("▇", stats.BarLength(day.TotalSeconds, maxTotal, chartWidth))

		total := "-"
		if day.TotalSeconds > 0 {
			total = timeutil.FormatWeeklyTime(day.TotalSeconds)
		}

		s.WriteString(fmt.Sprintf(
			"%-10s %-24s %s\n",
			day.Label,
			w.style.accent.Render(bar),
			w.style.muted.Render(total),
		))
	}

	return s.String()
}

func (w *Widget) shortHelp() []key.Binding {
	if w.focus != focusNone {
		return []key.Binding{w.keymap.cancel}
	}

	switch w.view {
	case viewNotes:
		return []key.Binding{
			w.keymap.addNote,
			w.keymap.addList,
			w.keymap.addItem,
			w.keymap.toggle,
			w.keymap.edit,
			w.keymap.delete,
			w.keymap.nextView,
			w.keymap.quit,
		}
	case viewStats:
		return []key.Binding{w.keymap.nextView, w.keymap.quit}
	}

	return []key.Binding{
		w.keymap.playPause,
		w.keymap.reset,
		w.keymap.save,
		w.keymap.editName,
		w.keymap.choose,
		w.keymap.delete,
		w.keymap.nextView,
		w.keymap.quit,
	}
}
