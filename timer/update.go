package timer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/AlekseyPolishchuk/time-tracker/store"
)

func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.help.Width = msg.Width

		return w, nil

	case stateMsg:
		w.state = store.State(msg)
		w.clampCursors()

		return w, nil

	case tickMsg:
		return w.handleTick(msg)

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))
		return w.handleKey(msg)
	}

	return w, nil
}

// handleTick refreshes the display clock. The tick is re-issued only
// while the timer is running.
func (w *Widget) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	w.now = time.Time(msg)
	w.ticking = false

	if !w.state.IsRunning {
		return w, nil
	}

	return w, tea.Batch(w.tick(), w.titleCmd())
}

func (w *Widget) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch w.focus {
	case focusName:
		return w.handleNameKey(msg)
	case focusNote:
		return w.handleNoteKey(msg)
	}

	if w.confirmingClear {
		return w.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, w.keymap.quit):
		return w, tea.Quit

	case key.Matches(msg, w.keymap.nextView):
		w.view = (w.view + 1) % 3
		return w, nil
	}

	switch w.view {
	case viewTimer:
		return w.handleTimerKey(msg)
	case viewNotes:
		return w.handleNotesKey(msg)
	}

	return w, nil
}

func (w *Widget) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keymap.playPause):
		if w.state.IsRunning {
			// The elapsed commit happens inside Pause, in the same
			// step as stopping: deferring it would lose seconds.
			w.store.Pause()
			return w, tea.SetWindowTitle(appTitle)
		}

		w.now = time.Now()
		w.store.SetRunning(true)

		var cmds []tea.Cmd
		if !w.ticking {
			cmds = append(cmds, w.tick())
		}

		return w, tea.Batch(append(cmds, w.titleCmd())...)

	case key.Matches(msg, w.keymap.reset):
		w.store.ResetTimer()
		return w, nil

	case key.Matches(msg, w.keymap.save):
		return w.saveTracker()

	case key.Matches(msg, w.keymap.editName):
		w.focus = focusName
		w.nameBackup = w.state.ActiveTrackerName
		w.nameInput.SetValue(w.state.ActiveTrackerName)
		w.nameInput.CursorEnd()

		return w, w.nameInput.Focus()

	case key.Matches(msg, w.keymap.up):
		if w.cursor > 0 {
			w.cursor--
		}

		return w, nil

	case key.Matches(msg, w.keymap.down):
		if w.cursor < len(w.state.Trackers)-1 {
			w.cursor++
		}

		return w, nil

	case key.Matches(msg, w.keymap.choose):
		if w.cursor < len(w.state.Trackers) {
			id := w.state.Trackers[w.cursor].ID
			w.store.SetActiveTracker(&id)
		}

		return w, nil

	case key.Matches(msg, w.keymap.deselect):
		w.store.SetActiveTracker(nil)
		return w, nil

	case key.Matches(msg, w.keymap.delete):
		if w.cursor < len(w.state.Trackers) {
			w.store.DeleteTracker(w.state.Trackers[w.cursor].ID)
		}

		return w, nil

	case key.Matches(msg, w.keymap.clearAll):
		if len(w.state.Trackers) > 0 {
			w.confirmingClear = true
		}

		return w, nil
	}

	return w, nil
}

// saveTracker commits the active timer under the typed name. An empty
// name focuses the name input instead of committing.
func (w *Widget) saveTracker() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(w.nameInput.Value())
	if name == "" {
		name = strings.TrimSpace(w.state.ActiveTrackerName)
	}

	if name == "" {
		w.focus = focusName
		return w, w.nameInput.Focus()
	}

	w.store.SaveTracker(name)
	w.nameInput.Reset()

	return w, tea.Batch(
		tea.SetWindowTitle(appTitle),
		w.savedHook(name),
	)
}

func (w *Widget) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		w.focus = focusNone
		w.nameInput.Blur()

		return w.saveTracker()

	case tea.KeyEscape:
		// Discard the in-progress edit and revert to the name that
		// was committed before editing began.
		w.nameInput.SetValue(w.nameBackup)
		w.store.SetActiveTrackerName(w.nameBackup)
		w.focus = focusNone
		w.nameInput.Blur()

		return w, nil
	}

	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)

	w.store.SetActiveTrackerName(w.nameInput.Value())

	return w, cmd
}

func (w *Widget) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := w.state.Notes

	switch {
	case key.Matches(msg, w.keymap.up):
		if w.noteCursor > 0 {
			w.noteCursor--
			w.itemCursor = -1
		}

		return w, nil

	case key.Matches(msg, w.keymap.down):
		if w.noteCursor < len(notes)-1 {
			w.noteCursor++
			w.itemCursor = -1
		}

		return w, nil

	case key.Matches(msg, w.keymap.left):
		if w.itemCursor >= 0 {
			w.itemCursor--
		}

		return w, nil

	case key.Matches(msg, w.keymap.right):
		if n := w.currentNote(); n != nil && n.IsTodo() &&
			w.itemCursor < len(n.Items)-1 {
			w.itemCursor++
		}

		return w, nil

	case key.Matches(msg, w.keymap.toggle):
		if n := w.currentNote(); n != nil && n.IsTodo() && w.itemCursor >= 0 {
			w.store.ToggleTodoItem(n.ID, n.Items[w.itemCursor].ID)
		}

		return w, nil

	case key.Matches(msg, w.keymap.addNote):
		return w.openNoteInput(intentAddNote, "Write something...", "")

	case key.Matches(msg, w.keymap.addList):
		return w.openNoteInput(intentAddTodoList, "Checklist title...", "")

	case key.Matches(msg, w.keymap.addItem):
		if n := w.currentNote(); n != nil && n.IsTodo() {
			w.editNoteID = n.ID
			return w.openNoteInput(intentAddTodoItem, "New item...", "")
		}

		return w, nil

	case key.Matches(msg, w.keymap.edit):
		return w.startEdit()

	case key.Matches(msg, w.keymap.delete):
		if n := w.currentNote(); n != nil {
			if n.IsTodo() && w.itemCursor >= 0 {
				w.store.DeleteTodoItem(n.ID, n.Items[w.itemCursor].ID)
				w.itemCursor--
			} else {
				w.store.DeleteNote(n.ID)
			}
		}

		return w, nil

	case key.Matches(msg, w.keymap.clearAll):
		if len(notes) > 0 {
			w.confirmingClear = true
		}

		return w, nil
	}

	return w, nil
}

// startEdit opens the input prefilled with the value under the cursor:
// a text note's content, a checklist's title, or the selected item's
// text.
func (w *Widget) startEdit() (tea.Model, tea.Cmd) {
	n := w.currentNote()
	if n == nil {
		return w, nil
	}

	w.editNoteID = n.ID

	if !n.IsTodo() {
		return w.openNoteInput(intentEditNote, "", n.Content)
	}

	if w.itemCursor >= 0 {
		w.editItemID = n.Items[w.itemCursor].ID
		return w.openNoteInput(intentEditItem, "", n.Items[w.itemCursor].Text)
	}

	return w.openNoteInput(intentEditNote, "", n.Title)
}

func (w *Widget) openNoteInput(
	intent inputIntent,
	placeholder, value string,
) (tea.Model, tea.Cmd) {
	w.intent = intent
	w.focus = focusNote

	if placeholder != "" {
		w.noteInput.Placeholder = placeholder
	}

	w.noteInput.SetValue(value)
	w.noteInput.CursorEnd()

	return w, w.noteInput.Focus()
}

func (w *Widget) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		w.commitNoteInput()
		w.closeNoteInput()

		return w, nil

	case tea.KeyEscape:
		// Unsaved text is discarded.
		w.closeNoteInput()
		return w, nil
	}

	var cmd tea.Cmd
	w.noteInput, cmd = w.noteInput.Update(msg)

	return w, cmd
}

func (w *Widget) commitNoteInput() {
	value := strings.TrimSpace(w.noteInput.Value())
	if value == "" {
		return
	}

	switch w.intent {
	case intentAddNote:
		w.store.AddNote(value)
		w.noteCursor = 0

	case intentAddTodoList:
		w.store.AddTodoList(value, nil)
		w.noteCursor = 0
		w.itemCursor = -1

	case intentAddTodoItem:
		w.store.AddTodoItem(w.editNoteID, value)

	case intentEditNote:
		if n := w.state.Note(w.editNoteID); n != nil && n.IsTodo() {
			w.store.UpdateTodoListTitle(w.editNoteID, value)
		} else {
			w.store.UpdateNote(w.editNoteID, value)
		}

	case intentEditItem:
		w.store.UpdateTodoItem(w.editNoteID, w.editItemID, value)
	}
}

func (w *Widget) closeNoteInput() {
	w.focus = focusNone
	w.noteInput.Reset()
	w.noteInput.Blur()
}

func (w *Widget) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, w.keymap.confirm) {
		switch w.view {
		case viewTimer:
			w.store.ClearTrackers()
			w.cursor = 0
		case viewNotes:
			w.store.ClearNotes()
			w.noteCursor = 0
			w.itemCursor = -1
		}
	}

	w.confirmingClear = false

	return w, nil
}
