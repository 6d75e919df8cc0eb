package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

func TestMergeEmptySnapshot(t *testing.T) {
	got := Merge(defaultState(), nil)

	if diff := cmp.Diff(defaultState(), got); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestMergeLegacyNoteGainsTextType(t *testing.T) {
	raw := []byte(`{
		"notes": [
			{"id": 17, "content": "pre-migration", "createdAt": "2023-01-02T10:00:00Z"}
		]
	}`)

	got := Merge(defaultState(), raw)

	if len(got.Notes) != 1 {
		t.Fatalf("expected 1 note, but got %d", len(got.Notes))
	}

	expected := models.Note{
		ID:        17,
		Type:      models.NoteText,
		Content:   "pre-migration",
		CreatedAt: "2023-01-02T10:00:00Z",
	}

	if diff := cmp.Diff(expected, got.Notes[0]); diff != "" {
		t.Errorf("migrated note mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePersistedValuesWin(t *testing.T) {
	raw := []byte(`{
		"trackers": [
			{"id": 1, "name": "reading", "time": 360, "createdAt": "2024-05-01T08:30:00Z"}
		],
		"currentTime": 12,
		"activeTrackerName": "reading",
		"theme": "night",
		"dotColor": "#ff8800"
	}`)

	got := Merge(defaultState(), raw)

	if len(got.Trackers) != 1 || got.Trackers[0].Name != "reading" {
		t.Errorf("unexpected trackers: %+v", got.Trackers)
	}

	if got.CurrentTime != 12 {
		t.Errorf("expected currentTime 12, but got %d", got.CurrentTime)
	}

	if got.Theme != models.ThemeNight || got.DotColor != "#ff8800" {
		t.Errorf("unexpected preferences: %q %q", got.Theme, got.DotColor)
	}
}

func TestMergeMissingCurrentTimeDefaultsToZero(t *testing.T) {
	raw := []byte(`{"isRunning": false}`)

	got := Merge(defaultState(), raw)

	if got.CurrentTime != 0 {
		t.Errorf("expected 0, but got %d", got.CurrentTime)
	}
}

func TestMergeToleratesMalformedFields(t *testing.T) {
	raw := []byte(`{
		"currentTime": "not-a-number",
		"theme": "lavender",
		"startedAt": 1700000000000,
		"dotColor": "#123456"
	}`)

	got := Merge(defaultState(), raw)

	if got.CurrentTime != 0 {
		t.Errorf("expected malformed currentTime to default, but got %d", got.CurrentTime)
	}

	if got.Theme != models.ThemeDarkest {
		t.Errorf("expected unknown theme to default, but got %q", got.Theme)
	}

	if got.DotColor != "#123456" {
		t.Errorf("expected valid sibling field to load, but got %q", got.DotColor)
	}
}

func TestMergeUnknownFieldsIgnored(t *testing.T) {
	raw := []byte(`{"futureFeature": {"nested": true}, "currentTime": 5}`)

	got := Merge(defaultState(), raw)

	if got.CurrentTime != 5 {
		t.Errorf("expected currentTime 5, but got %d", got.CurrentTime)
	}
}

func TestMergeRestoresRunningInvariant(t *testing.T) {
	// Running without a stamp cannot be represented; the load must
	// resolve it to a stopped timer.
	raw := []byte(`{"isRunning": true}`)

	got := Merge(defaultState(), raw)

	if got.IsRunning {
		t.Error("expected running-without-stamp to load as stopped")
	}

	// A stale stamp on a stopped timer is dropped.
	raw = []byte(`{"isRunning": false, "startedAt": "2024-05-01T08:30:00Z"}`)

	got = Merge(defaultState(), raw)

	if got.StartedAt != nil {
		t.Error("expected stamp to be cleared on a stopped timer")
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	raw := []byte(`{
		"trackers": [{"id": 3, "name": "gym", "time": 1800, "createdAt": "2024-05-02T18:00:00Z"}],
		"notes": [{"id": 4, "content": "legacy"}],
		"currentTime": 55,
		"isRunning": true,
		"startedAt": "2024-05-02T19:00:00Z",
		"theme": "night"
	}`)

	once := Merge(defaultState(), raw)
	twice := Merge(once, raw)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("merge is not idempotent (-want +got):\n%s", diff)
	}
}

func TestMergeGarbageSnapshotFallsBackToDefaults(t *testing.T) {
	got := Merge(defaultState(), []byte("{not json"))

	if diff := cmp.Diff(defaultState(), got); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}
