package store

import (
	"time"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

// State is the canonical widget state. The store hands out copies;
// callers never mutate one in place.
type State struct {
	// Trackers holds saved trackers, newest first.
	Trackers []models.Tracker `json:"trackers"`

	// Notes holds text notes and checklists, newest first.
	Notes []models.Note `json:"notes"`

	// CurrentTime is the accumulated seconds of the active timer,
	// excluding any currently running wall-clock interval.
	CurrentTime int `json:"currentTime"`

	// IsRunning reports whether the active timer is running.
	IsRunning bool `json:"isRunning"`

	// StartedAt is the wall-clock instant the current run began.
	// Non-nil if and only if IsRunning.
	StartedAt *time.Time `json:"startedAt"`

	// ActiveTrackerID identifies the tracker being edited in place,
	// or nil when the timer belongs to an unsaved new tracker.
	ActiveTrackerID *int64 `json:"activeTrackerId"`

	// ActiveTrackerName is the transient display name of the tracker
	// under edit.
	ActiveTrackerName string `json:"activeTrackerName"`

	Theme    models.Theme `json:"theme"`
	DotColor string       `json:"dotColor"`
}

func defaultState() State {
	return State{
		Trackers: []models.Tracker{},
		Notes:    []models.Note{},
		Theme:    models.ThemeDarkest,
		DotColor: "#0fffc3",
	}
}

// Elapsed returns the seconds the timer should display at the given
// instant: the accumulated baseline plus the in-flight run when
// running. The in-flight portion is always recomputed by subtraction,
// never by incrementing a counter, so the display cannot drift.
func (st *State) Elapsed(now time.Time) int {
	if !st.IsRunning || st.StartedAt == nil {
		return st.CurrentTime
	}

	return st.CurrentTime + int(now.Sub(*st.StartedAt)/time.Second)
}

// Tracker returns the tracker with the given id, or nil.
func (st *State) Tracker(id int64) *models.Tracker {
	for i := range st.Trackers {
		if st.Trackers[i].ID == id {
			return &st.Trackers[i]
		}
	}

	return nil
}

// Note returns the note with the given id, or nil.
func (st *State) Note(id int64) *models.Note {
	for i := range st.Notes {
		if st.Notes[i].ID == id {
			return &st.Notes[i]
		}
	}

	return nil
}

func (st State) clone() State {
	out := st

	out.Trackers = make([]models.Tracker, len(st.Trackers))
	copy(out.Trackers, st.Trackers)

	out.Notes = make([]models.Note, len(st.Notes))
	for i, n := range st.Notes {
		if n.Items != nil {
			items := make([]models.TodoItem, len(n.Items))
			copy(items, n.Items)
			n.Items = items
		}

		out.Notes[i] = n
	}

	if st.StartedAt != nil {
		t := *st.StartedAt
		out.StartedAt = &t
	}

	if st.ActiveTrackerID != nil {
		id := *st.ActiveTrackerID
		out.ActiveTrackerID = &id
	}

	return out
}
