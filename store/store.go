// Package store holds the canonical widget state and persists a JSON
// snapshot of it to the data store after every mutation
package store

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
	"github.com/AlekseyPolishchuk/time-tracker/internal/timeutil"
)

// Store is the single writer over the widget state. Every mutation goes
// through one of its methods; each mutation persists the new snapshot
// and broadcasts it to subscribers. Invalid inputs (empty names,
// unknown ids, operations on the wrong note variant) are silent no-ops.
type Store struct {
	mu      sync.Mutex
	state   State
	db      DB
	now     func() time.Time
	subs    []func(State)
	durable bool
	lastID  int64
}

// New loads the persisted snapshot from db, merges it over the default
// state, and returns a ready store. A nil db or an unreadable snapshot
// degrades to in-memory operation rather than failing.
func New(db DB) *Store {
	s := &Store{
		db:      db,
		now:     time.Now,
		durable: db != nil,
	}

	var raw []byte

	if db != nil {
		var err error

		raw, err = db.LoadState()
		if err != nil {
			slog.Warn("unable to read persisted state", "error", err)
		}
	}

	s.state = Merge(defaultState(), raw)

	return s
}

// Subscribe registers a callback that receives a copy of the state
// after every mutation.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// Elapsed returns the display seconds for the active timer at the
// given instant.
func (s *Store) Elapsed(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Elapsed(now)
}

// update runs fn against the state under the lock. When fn reports a
// change, the new snapshot is persisted and broadcast.
func (s *Store) update(fn func(st *State, now time.Time) bool) {
	s.mu.Lock()

	now := s.now()
	if !fn(&s.state, now) {
		s.mu.Unlock()
		return
	}

	snap := s.state.clone()
	s.persist(snap)
	subs := slices.Clone(s.subs)

	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// persist writes the snapshot to the data store. The first failure
// disables durability for the rest of the session; mutations keep
// succeeding in memory.
func (s *Store) persist(snap State) {
	if !s.durable {
		return
	}

	data, err := json.Marshal(snap)
	if err == nil {
		err = s.db.SaveState(data)
	}

	if err != nil {
		s.durable = false
		slog.Warn(
			"state can no longer be persisted; continuing in memory only",
			"error", err,
		)
	}
}

// newID derives a unique id from the creation timestamp.
func (s *Store) newID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	s.lastID = id

	return id
}

func resetActiveTimer(st *State) {
	st.CurrentTime = 0
	st.IsRunning = false
	st.StartedAt = nil
	st.ActiveTrackerID = nil
	st.ActiveTrackerName = ""
}

// SaveTracker commits the active timer under the given name. When a
// tracker is being edited in place, that tracker is updated; otherwise
// a new tracker is prepended. In-flight running seconds are included in
// the committed time. The active timer resets to a fresh stopped state
// afterwards. A name that is empty after trimming is a no-op.
func (s *Store) SaveTracker(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	s.update(func(st *State, now time.Time) bool {
		total := st.Elapsed(now)

		if st.ActiveTrackerID != nil {
			if tr := st.Tracker(*st.ActiveTrackerID); tr != nil {
				tr.Name = name
				tr.Time = total
				resetActiveTimer(st)

				return true
			}
		}

		st.Trackers = slices.Insert(st.Trackers, 0, models.Tracker{
			ID:        s.newID(now),
			Name:      name,
			Time:      total,
			CreatedAt: timeutil.ToTimestamp(now),
		})
		resetActiveTimer(st)

		return true
	})
}

// AddTracker is the add-form entry point; it shares SaveTracker's
// commit semantics.
func (s *Store) AddTracker(name string) {
	s.SaveTracker(name)
}

// UpdateTracker merges the given fields into the tracker matching id.
// It never creates a tracker.
func (s *Store) UpdateTracker(id int64, updates TrackerUpdate) {
	s.update(func(st *State, _ time.Time) bool {
		tr := st.Tracker(id)
		if tr == nil {
			return false
		}

		if updates.Name != nil {
			tr.Name = *updates.Name
		}

		if updates.Time != nil {
			tr.Time = *updates.Time
		}

		return true
	})
}

// TrackerUpdate is a partial tracker field update. Nil fields are left
// untouched.
type TrackerUpdate struct {
	Name *string
	Time *int
}

// DeleteTracker removes the tracker matching id.
func (s *Store) DeleteTracker(id int64) {
	s.update(func(st *State, _ time.Time) bool {
		for i := range st.Trackers {
			if st.Trackers[i].ID == id {
				st.Trackers = slices.Delete(st.Trackers, i, i+1)
				return true
			}
		}

		return false
	})
}

// ClearTrackers empties the tracker list and drops any active-tracker
// reference.
func (s *Store) ClearTrackers() {
	s.update(func(st *State, _ time.Time) bool {
		st.Trackers = []models.Tracker{}
		st.ActiveTrackerID = nil
		st.ActiveTrackerName = ""

		return true
	})
}

// SetActiveTracker switches which saved tracker the timer edits. The
// previously active tracker (if any) first receives the current
// elapsed time, using the same computation as SaveTracker. A nil id
// resets to a fresh unsaved timer. An unknown id leaves the state
// unchanged.
func (s *Store) SetActiveTracker(id *int64) {
	s.update(func(st *State, now time.Time) bool {
		var target *models.Tracker

		if id != nil {
			target = st.Tracker(*id)
			if target == nil {
				return false
			}
		}

		if st.ActiveTrackerID != nil {
			if prev := st.Tracker(*st.ActiveTrackerID); prev != nil {
				prev.Time = st.Elapsed(now)
			}
		}

		if target == nil {
			resetActiveTimer(st)
			return true
		}

		st.ActiveTrackerID = id
		st.ActiveTrackerName = target.Name
		st.CurrentTime = target.Time
		st.IsRunning = false
		st.StartedAt = nil

		return true
	})
}

// SetActiveTrackerName sets the transient display name for the tracker
// under edit.
func (s *Store) SetActiveTrackerName(name string) {
	s.update(func(st *State, _ time.Time) bool {
		st.ActiveTrackerName = name
		return true
	})
}

// SetCurrentTime overwrites the accumulated seconds baseline.
func (s *Store) SetCurrentTime(seconds int) {
	s.update(func(st *State, _ time.Time) bool {
		st.CurrentTime = seconds
		return true
	})
}

// SetRunning starts or stops the timer. Starting stamps the wall-clock
// start time; stopping clears it. Neither direction rolls in-flight
// elapsed time into the baseline: use Pause for the commit-and-stop
// transition.
func (s *Store) SetRunning(running bool) {
	s.update(func(st *State, now time.Time) bool {
		st.IsRunning = running

		if running {
			st.StartedAt = &now
		} else {
			st.StartedAt = nil
		}

		return true
	})
}

// Pause commits the in-flight elapsed seconds into the baseline and
// stops the timer, in one step. A stopped timer is a no-op. The commit
// must happen in the same step as the stop or the elapsed seconds are
// lost.
func (s *Store) Pause() {
	s.update(func(st *State, now time.Time) bool {
		if !st.IsRunning {
			return false
		}

		st.CurrentTime = st.Elapsed(now)
		st.IsRunning = false
		st.StartedAt = nil

		return true
	})
}

// ResetTimer zeroes the accumulated seconds. A running timer keeps
// running from zero with a fresh start stamp; a stopped timer stays
// stopped.
func (s *Store) ResetTimer() {
	s.update(func(st *State, now time.Time) bool {
		st.CurrentTime = 0

		if st.IsRunning {
			st.StartedAt = &now
		} else {
			st.StartedAt = nil
		}

		return true
	})
}

// AddNote prepends a new text note.
func (s *Store) AddNote(content string) {
	s.update(func(st *State, now time.Time) bool {
		st.Notes = slices.Insert(st.Notes, 0, models.Note{
			ID:        s.newID(now),
			Type:      models.NoteText,
			Content:   content,
			CreatedAt: timeutil.ToTimestamp(now),
		})

		return true
	})
}

// UpdateNote replaces the content of the note matching id.
func (s *Store) UpdateNote(id int64, content string) {
	s.update(func(st *State, _ time.Time) bool {
		n := st.Note(id)
		if n == nil {
			return false
		}

		n.Content = content

		return true
	})
}

// DeleteNote removes the note matching id.
func (s *Store) DeleteNote(id int64) {
	s.update(func(st *State, _ time.Time) bool {
		for i := range st.Notes {
			if st.Notes[i].ID == id {
				st.Notes = slices.Delete(st.Notes, i, i+1)
				return true
			}
		}

		return false
	})
}

// ClearNotes empties the note list.
func (s *Store) ClearNotes() {
	s.update(func(st *State, _ time.Time) bool {
		st.Notes = []models.Note{}
		return true
	})
}

// AddTodoList prepends a new checklist note with the given items.
func (s *Store) AddTodoList(title string, items []models.TodoItem) {
	s.update(func(st *State, now time.Time) bool {
		st.Notes = slices.Insert(st.Notes, 0, models.Note{
			ID:        s.newID(now),
			Type:      models.NoteTodo,
			Title:     title,
			Items:     slices.Clone(items),
			CreatedAt: timeutil.ToTimestamp(now),
		})

		return true
	})
}

// todoNote returns the checklist note matching id, or nil when the id
// is unknown or names a text note.
func todoNote(st *State, id int64) *models.Note {
	n := st.Note(id)
	if n == nil || !n.IsTodo() {
		return nil
	}

	return n
}

// UpdateTodoListTitle renames the checklist matching noteID.
func (s *Store) UpdateTodoListTitle(noteID int64, title string) {
	s.update(func(st *State, _ time.Time) bool {
		n := todoNote(st, noteID)
		if n == nil {
			return false
		}

		n.Title = title

		return true
	})
}

// AddTodoItem appends a new unchecked item to the checklist matching
// noteID.
func (s *Store) AddTodoItem(noteID int64, text string) {
	s.update(func(st *State, now time.Time) bool {
		n := todoNote(st, noteID)
		if n == nil {
			return false
		}

		n.Items = append(n.Items, models.TodoItem{
			ID:   s.newID(now),
			Text: text,
		})

		return true
	})
}

// ToggleTodoItem flips the completion state of an item in the
// checklist matching noteID.
func (s *Store) ToggleTodoItem(noteID, itemID int64) {
	s.update(func(st *State, _ time.Time) bool {
		n := todoNote(st, noteID)
		if n == nil {
			return false
		}

		for i := range n.Items {
			if n.Items[i].ID == itemID {
				n.Items[i].Completed = !n.Items[i].Completed
				return true
			}
		}

		return false
	})
}

// UpdateTodoItem replaces the text of an item in the checklist
// matching noteID.
func (s *Store) UpdateTodoItem(noteID, itemID int64, text string) {
	s.update(func(st *State, _ time.Time) bool {
		n := todoNote(st, noteID)
		if n == nil {
			return false
		}

		for i := range n.Items {
			if n.Items[i].ID == itemID {
				n.Items[i].Text = text
				return true
			}
		}

		return false
	})
}

// DeleteTodoItem removes an item from the checklist matching noteID.
func (s *Store) DeleteTodoItem(noteID, itemID int64) {
	s.update(func(st *State, _ time.Time) bool {
		n := todoNote(st, noteID)
		if n == nil {
			return false
		}

		for i := range n.Items {
			if n.Items[i].ID == itemID {
				n.Items = slices.Delete(n.Items, i, i+1)
				return true
			}
		}

		return false
	})
}

// SetTheme switches the color theme. Unknown themes are rejected.
func (s *Store) SetTheme(theme models.Theme) {
	s.update(func(st *State, _ time.Time) bool {
		if !theme.Valid() {
			return false
		}

		st.Theme = theme

		return true
	})
}

// SetDotColor sets the accent color.
func (s *Store) SetDotColor(color string) {
	s.update(func(st *State, _ time.Time) bool {
		st.DotColor = color
		return true
	})
}
