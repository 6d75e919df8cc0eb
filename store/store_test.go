package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

type dbMock struct {
	state   []byte
	saves   int
	saveErr error
}

func (d *dbMock) LoadState() ([]byte, error) {
	return d.state, nil
}

func (d *dbMock) SaveState(data []byte) error {
	if d.saveErr != nil {
		return d.saveErr
	}

	d.state = data
	d.saves++

	return nil
}

func (d *dbMock) Close() error {
	return nil
}

// newTestStore returns a store with a fixed clock that can be advanced
// by the test.
func newTestStore(t *testing.T) (*Store, *dbMock, *time.Time) {
	t.Helper()

	db := &dbMock{}
	s := New(db)

	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.Local)
	s.now = func() time.Time { return now }

	return s, db, &now
}

func TestSaveTrackerNew(t *testing.T) {
	s, db, now := newTestStore(t)

	s.SetCurrentTime(90)
	s.SaveTracker("  reading  ")

	st := s.Snapshot()

	if len(st.Trackers) != 1 {
		t.Fatalf("expected 1 tracker, but got %d", len(st.Trackers))
	}

	tr := st.Trackers[0]
	if tr.Name != "reading" {
		t.Errorf("expected trimmed name %q, but got %q", "reading", tr.Name)
	}

	if tr.Time != 90 {
		t.Errorf("expected committed time 90, but got %d", tr.Time)
	}

	if tr.CreatedAt != now.Format(time.RFC3339) {
		t.Errorf("unexpected creation timestamp: %q", tr.CreatedAt)
	}

	if st.CurrentTime != 0 || st.IsRunning || st.StartedAt != nil {
		t.Errorf("expected active timer reset, but got %+v", st)
	}

	if db.saves == 0 {
		t.Error("expected snapshot to be persisted")
	}
}

func TestSaveTrackerEmptyNameIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(42)
	s.SaveTracker("   ")

	st := s.Snapshot()

	if len(st.Trackers) != 0 {
		t.Errorf("expected no trackers, but got %d", len(st.Trackers))
	}

	if st.CurrentTime != 42 {
		t.Errorf("expected current time to stay 42, but got %d", st.CurrentTime)
	}
}

func TestSaveTrackerIncludesRunningElapsed(t *testing.T) {
	s, _, now := newTestStore(t)

	s.SetCurrentTime(10)
	s.SetRunning(true)

	*now = now.Add(25 * time.Second)

	s.SaveTracker("deep work")

	st := s.Snapshot()

	if st.Trackers[0].Time != 35 {
		t.Errorf(
			"expected in-flight seconds to be committed (35), but got %d",
			st.Trackers[0].Time,
		)
	}

	if st.IsRunning || st.StartedAt != nil {
		t.Error("expected timer to be stopped after save")
	}
}

func TestSaveTrackerUpdatesActiveInPlace(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(100)
	s.SaveTracker("draft")

	id := s.Snapshot().Trackers[0].ID

	s.SetActiveTracker(&id)
	s.SetCurrentTime(250)
	s.SaveTracker("final")

	st := s.Snapshot()

	if len(st.Trackers) != 1 {
		t.Fatalf("expected in-place update, but got %d trackers", len(st.Trackers))
	}

	if st.Trackers[0].Name != "final" || st.Trackers[0].Time != 250 {
		t.Errorf("unexpected tracker after edit: %+v", st.Trackers[0])
	}

	if st.ActiveTrackerID != nil || st.ActiveTrackerName != "" {
		t.Error("expected active-tracker reference to be cleared")
	}
}

func TestPauseCommitsElapsed(t *testing.T) {
	s, _, now := newTestStore(t)

	s.SetCurrentTime(5)
	s.SetRunning(true)

	*now = now.Add(37 * time.Second)

	s.Pause()

	st := s.Snapshot()

	if st.CurrentTime != 42 {
		t.Errorf("expected accumulated 42 seconds, but got %d", st.CurrentTime)
	}

	if st.IsRunning || st.StartedAt != nil {
		t.Error("expected timer to be stopped with a cleared stamp")
	}
}

func TestPauseWhenStoppedIsNoop(t *testing.T) {
	s, db, _ := newTestStore(t)

	saves := db.saves

	s.Pause()

	if db.saves != saves {
		t.Error("expected no persisted mutation for a stopped pause")
	}
}

func TestResetKeepsRunningTimerRunning(t *testing.T) {
	s, _, now := newTestStore(t)

	s.SetCurrentTime(30)
	s.SetRunning(true)

	*now = now.Add(10 * time.Second)

	s.ResetTimer()

	st := s.Snapshot()

	if st.CurrentTime != 0 {
		t.Errorf("expected zeroed time, but got %d", st.CurrentTime)
	}

	if !st.IsRunning || st.StartedAt == nil {
		t.Fatal("expected a running timer to keep running after reset")
	}

	if !st.StartedAt.Equal(*now) {
		t.Errorf("expected a fresh start stamp %v, but got %v", *now, *st.StartedAt)
	}
}

func TestResetStoppedTimer(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(30)
	s.ResetTimer()

	st := s.Snapshot()

	if st.CurrentTime != 0 || st.IsRunning || st.StartedAt != nil {
		t.Errorf("expected a stopped timer at zero, but got %+v", st)
	}
}

func TestElapsedWhileRunning(t *testing.T) {
	s, _, now := newTestStore(t)

	s.SetCurrentTime(12)
	s.SetRunning(true)

	display := s.Elapsed(now.Add(8 * time.Second))

	if display != 20 {
		t.Errorf("expected display value 20, but got %d", display)
	}
}

func TestSetActiveTrackerSwitch(t *testing.T) {
	s, _, now := newTestStore(t)

	s.SetCurrentTime(100)
	s.SaveTracker("first")
	firstID := s.Snapshot().Trackers[0].ID

	*now = now.Add(time.Second)

	s.SetCurrentTime(200)
	s.SaveTracker("second")
	secondID := s.Snapshot().Trackers[0].ID

	// Edit the first tracker and let some time run.
	s.SetActiveTracker(&firstID)
	s.SetRunning(true)

	*now = now.Add(60 * time.Second)

	// Switching must fold the running minute into the first tracker
	// before loading the second one's baseline.
	s.SetActiveTracker(&secondID)

	st := s.Snapshot()

	if got := st.Tracker(firstID).Time; got != 160 {
		t.Errorf("expected first tracker to hold 160 seconds, but got %d", got)
	}

	if st.CurrentTime != 200 {
		t.Errorf("expected baseline 200 from second tracker, but got %d", st.CurrentTime)
	}

	if st.IsRunning || st.StartedAt != nil {
		t.Error("expected switch to load the target stopped")
	}

	if st.ActiveTrackerName != "second" {
		t.Errorf("expected active name %q, but got %q", "second", st.ActiveTrackerName)
	}
}

func TestSetActiveTrackerUnknownIDIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(100)
	s.SaveTracker("only")

	before := s.Snapshot()

	missing := int64(999)
	s.SetActiveTracker(&missing)

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("state changed on unknown id (-want +got):\n%s", diff)
	}
}

func TestSetActiveTrackerNilResets(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(100)
	s.SaveTracker("one")
	id := s.Snapshot().Trackers[0].ID

	s.SetActiveTracker(&id)
	s.SetCurrentTime(300)
	s.SetActiveTracker(nil)

	st := s.Snapshot()

	if got := st.Tracker(id).Time; got != 300 {
		t.Errorf("expected edit to be committed on deselect, but got %d", got)
	}

	if st.CurrentTime != 0 || st.ActiveTrackerID != nil || st.ActiveTrackerName != "" {
		t.Errorf("expected a fresh unsaved timer, but got %+v", st)
	}
}

func TestUpdateTracker(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(10)
	s.SaveTracker("alpha")
	id := s.Snapshot().Trackers[0].ID

	name := "beta"
	s.UpdateTracker(id, TrackerUpdate{Name: &name})

	secs := 77
	s.UpdateTracker(id, TrackerUpdate{Time: &secs})

	tr := s.Snapshot().Trackers[0]
	if tr.Name != "beta" || tr.Time != 77 {
		t.Errorf("unexpected tracker after updates: %+v", tr)
	}

	// Unknown ids never create trackers.
	s.UpdateTracker(12345, TrackerUpdate{Name: &name})

	if got := len(s.Snapshot().Trackers); got != 1 {
		t.Errorf("expected 1 tracker, but got %d", got)
	}
}

func TestDeleteTracker(t *testing.T) {
	s, _, now := newTestStore(t)

	s.SetCurrentTime(1)
	s.SaveTracker("a")

	*now = now.Add(time.Second)

	s.SetCurrentTime(2)
	s.SaveTracker("b")

	st := s.Snapshot()
	keep, remove := st.Trackers[0], st.Trackers[1]

	s.DeleteTracker(remove.ID)

	st = s.Snapshot()

	if len(st.Trackers) != 1 {
		t.Fatalf("expected 1 tracker, but got %d", len(st.Trackers))
	}

	if diff := cmp.Diff(keep, st.Trackers[0]); diff != "" {
		t.Errorf("surviving tracker changed (-want +got):\n%s", diff)
	}

	saves := s.Snapshot()
	s.DeleteTracker(424242)

	if diff := cmp.Diff(saves, s.Snapshot()); diff != "" {
		t.Errorf("state changed on deleting unknown id (-want +got):\n%s", diff)
	}
}

func TestTodoItemToggle(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddTodoList("groceries", []models.TodoItem{
		{ID: 1, Text: "milk"},
		{ID: 2, Text: "eggs"},
	})

	noteID := s.Snapshot().Notes[0].ID

	s.ToggleTodoItem(noteID, 1)

	if !s.Snapshot().Notes[0].Items[0].Completed {
		t.Error("expected item to be completed after one toggle")
	}

	s.ToggleTodoItem(noteID, 1)

	if s.Snapshot().Notes[0].Items[0].Completed {
		t.Error("expected item to revert after a second toggle")
	}
}

func TestTodoOperationsRejectTextNotes(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddNote("plain text")
	noteID := s.Snapshot().Notes[0].ID

	before := s.Snapshot()

	s.ToggleTodoItem(noteID, 1)
	s.AddTodoItem(noteID, "sneaky")
	s.UpdateTodoListTitle(noteID, "nope")
	s.DeleteTodoItem(noteID, 1)

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("text note mutated by checklist operations (-want +got):\n%s", diff)
	}
}

func TestTodoItemLifecycle(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddTodoList("chores", nil)
	noteID := s.Snapshot().Notes[0].ID

	s.AddTodoItem(noteID, "sweep")
	s.AddTodoItem(noteID, "mop")

	items := s.Snapshot().Notes[0].Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, but got %d", len(items))
	}

	s.UpdateTodoItem(noteID, items[0].ID, "sweep the porch")
	s.DeleteTodoItem(noteID, items[1].ID)
	s.UpdateTodoListTitle(noteID, "weekend chores")

	n := s.Snapshot().Notes[0]

	if n.Title != "weekend chores" {
		t.Errorf("expected renamed checklist, but got %q", n.Title)
	}

	if len(n.Items) != 1 || n.Items[0].Text != "sweep the porch" {
		t.Errorf("unexpected items: %+v", n.Items)
	}
}

func TestNotesLifecycle(t *testing.T) {
	s, _, now := newTestStore(t)

	s.AddNote("first")

	*now = now.Add(time.Second)

	s.AddNote("second")

	st := s.Snapshot()

	if len(st.Notes) != 2 || st.Notes[0].Content != "second" {
		t.Fatalf("expected newest-first notes, but got %+v", st.Notes)
	}

	s.UpdateNote(st.Notes[1].ID, "first, edited")
	s.DeleteNote(st.Notes[0].ID)

	st = s.Snapshot()

	if len(st.Notes) != 1 || st.Notes[0].Content != "first, edited" {
		t.Errorf("unexpected notes after edit/delete: %+v", st.Notes)
	}

	s.ClearNotes()

	if got := len(s.Snapshot().Notes); got != 0 {
		t.Errorf("expected no notes after clear, but got %d", got)
	}
}

func TestClearTrackersDropsActiveReference(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetCurrentTime(10)
	s.SaveTracker("gone")
	id := s.Snapshot().Trackers[0].ID
	s.SetActiveTracker(&id)

	s.ClearTrackers()

	st := s.Snapshot()

	if len(st.Trackers) != 0 || st.ActiveTrackerID != nil || st.ActiveTrackerName != "" {
		t.Errorf("expected empty list and no active reference, but got %+v", st)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetTheme(models.ThemeNight)

	if got := s.Snapshot().Theme; got != models.ThemeNight {
		t.Errorf("expected theme %q, but got %q", models.ThemeNight, got)
	}

	s.SetTheme(models.Theme("solarized"))

	if got := s.Snapshot().Theme; got != models.ThemeNight {
		t.Errorf("expected unknown theme to be rejected, but got %q", got)
	}
}

func TestPersistenceFailureDegradesToMemory(t *testing.T) {
	db := &dbMock{saveErr: errors.New("disk full")}
	s := New(db)

	s.AddNote("kept in memory")
	s.AddNote("still works")

	if got := len(s.Snapshot().Notes); got != 2 {
		t.Errorf("expected mutations to succeed in memory, but got %d notes", got)
	}
}

func TestSubscriberReceivesSnapshots(t *testing.T) {
	s, _, _ := newTestStore(t)

	var got []State
	s.Subscribe(func(st State) { got = append(got, st) })

	s.AddNote("hello")
	s.SetDotColor("#ff00ff")

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, but got %d", len(got))
	}

	if got[1].DotColor != "#ff00ff" {
		t.Errorf("expected latest snapshot, but got %+v", got[1])
	}

	// Snapshots are copies: mutating one must not leak into the store.
	got[1].Notes[0].Content = "tampered"

	if s.Snapshot().Notes[0].Content != "hello" {
		t.Error("subscriber snapshot aliases store state")
	}
}

func TestIDsAreUniqueWithinSameMillisecond(t *testing.T) {
	s, _, _ := newTestStore(t)

	// The fixed clock never advances, so every id derives from the
	// same timestamp.
	s.AddNote("a")
	s.AddNote("b")
	s.AddNote("c")

	seen := map[int64]bool{}

	for _, n := range s.Snapshot().Notes {
		if seen[n.ID] {
			t.Fatalf("duplicate id %d", n.ID)
		}

		seen[n.ID] = true
	}
}
