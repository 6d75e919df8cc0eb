// Package timer renders the interactive tracking widget: the running
// stopwatch, the saved tracker list, notes, and the weekly summary
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlekseyPolishchuk/time-tracker/internal/config"
	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
	"github.com/AlekseyPolishchuk/time-tracker/store"
)

const appTitle = "Time Tracker"

// view selects the active widget tab.
type view int

const (
	viewTimer view = iota
	viewNotes
	viewStats
)

// focus selects where keystrokes are routed.
type focus int

const (
	focusNone focus = iota
	focusName     // tracker name input
	focusNote     // note content / checklist title / item text input
)

// inputIntent says what the note input commits to on Enter.
type inputIntent int

const (
	intentAddNote inputIntent = iota
	intentAddTodoList
	intentAddTodoItem
	intentEditNote
	intentEditItem
)

type (
	// tickMsg is the 1-second display refresh. It never mutates the
	// store; the displayed value is recomputed from the wall clock.
	tickMsg time.Time

	// stateMsg delivers a store snapshot after a mutation.
	stateMsg store.State
)

// Widget is the bubbletea model for the tracking widget.
type Widget struct {
	store *store.Store
	opts  *config.Config

	state store.State
	now   time.Time

	view  view
	focus focus

	nameInput textinput.Model
	noteInput textinput.Model
	intent    inputIntent

	cursor     int // tracker list
	noteCursor int
	itemCursor int // -1 targets the checklist title
	editNoteID int64
	editItemID int64
	nameBackup string

	confirmingClear bool
	ticking         bool
	width           int
	height          int

	keymap keymap
	help   help.Model
	style  styles
}

type styles struct {
	clock    lipgloss.Style
	accent   lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	done     lipgloss.Style
	dot      lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	accent := lipgloss.Color(cfg.Display.DotColor)

	base := lipgloss.NewStyle()
	muted := base.Foreground(lipgloss.Color("240"))

	if cfg.Display.Theme == models.ThemeNight {
		muted = base.Foreground(lipgloss.Color("244"))
	}

	return styles{
		clock:    base.Foreground(accent).Bold(true),
		accent:   base.Foreground(accent),
		title:    base.Bold(true),
		selected: base.Foreground(accent).Bold(true),
		muted:    muted,
		done:     muted.Strikethrough(true),
		dot:      base.Foreground(accent).SetString("●"),
	}
}

// New returns the widget model over the given store.
func New(s *store.Store, cfg *config.Config) *Widget {
	name := textinput.New()
	name.Placeholder = "Enter tracker name..."
	name.CharLimit = 80
	name.Width = 32

	note := textinput.New()
	note.Placeholder = "Write something..."
	note.CharLimit = 200
	note.Width = 48

	w := &Widget{
		store:     s,
		opts:      cfg,
		state:     s.Snapshot(),
		now:       time.Now(),
		nameInput: name,
		noteInput: note,
		keymap:    defaultKeymap,
		help:      help.New(),
		style:     newStyles(cfg),
	}

	w.nameInput.SetValue(w.state.ActiveTrackerName)
	w.itemCursor = -1

	return w
}

func (w *Widget) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(appTitle)}

	// A running timer may have been restored from the persisted
	// snapshot.
	if w.state.IsRunning {
		cmds = append(cmds, w.tick())
	}

	return tea.Batch(cmds...)
}

// tick schedules the next display refresh. At most one tick is in
// flight; it is re-issued only while the timer runs, so repeated
// play/pause cycles never accumulate orphaned ticks.
func (w *Widget) tick() tea.Cmd {
	w.ticking = true

	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// titleCmd mirrors the formatted running time in the terminal window
// title. Informational only.
func (w *Widget) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(w.displayClock() + " · " + appTitle)
}

// Run starts the widget and blocks until it exits.
func Run(s *store.Store, cfg *config.Config) error {
	// The config file is the source of truth for display preferences;
	// the persisted snapshot mirrors them.
	s.SetTheme(cfg.Display.Theme)
	s.SetDotColor(cfg.Display.DotColor)

	w := New(s, cfg)

	p := tea.NewProgram(w, tea.WithAltScreen())

	// Re-render from every store mutation, whether it originated in
	// this widget or not.
	s.Subscribe(func(st store.State) {
		p.Send(stateMsg(st))
	})

	_, err := p.Run()

	return err
}
