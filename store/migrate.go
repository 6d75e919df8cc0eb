package store

import (
	"encoding/json"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

// Merge overlays a persisted snapshot onto the default state. Every
// field is optional: missing or malformed fields keep their defaults,
// and unknown fields are ignored, so snapshots written by older or
// newer versions load without data loss. Merging the same snapshot
// twice yields the same result as merging once.
func Merge(defaults State, raw []byte) State {
	st := defaults

	if len(raw) == 0 {
		return st
	}

	var fields map[string]json.RawMessage

	if err := json.Unmarshal(raw, &fields); err != nil {
		return st
	}

	mergeField(fields, "trackers", &st.Trackers)
	mergeField(fields, "currentTime", &st.CurrentTime)
	mergeField(fields, "isRunning", &st.IsRunning)
	mergeField(fields, "startedAt", &st.StartedAt)
	mergeField(fields, "activeTrackerId", &st.ActiveTrackerID)
	mergeField(fields, "activeTrackerName", &st.ActiveTrackerName)
	mergeField(fields, "dotColor", &st.DotColor)

	var theme models.Theme
	if mergeField(fields, "theme", &theme) && theme.Valid() {
		st.Theme = theme
	}

	if raw, ok := fields["notes"]; ok {
		st.Notes = migrateNotes(raw, defaults.Notes)
	}

	// Restore the running-implies-stamped invariant, whatever shape
	// the snapshot was in.
	if !st.IsRunning {
		st.StartedAt = nil
	} else if st.StartedAt == nil {
		st.IsRunning = false
	}

	if st.Trackers == nil {
		st.Trackers = []models.Tracker{}
	}

	return st
}

// mergeField decodes a single snapshot field into dst, reporting
// whether it was present and well-formed. A malformed field leaves dst
// untouched.
func mergeField[T any](
	fields map[string]json.RawMessage,
	key string,
	dst *T,
) bool {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	*dst = v

	return true
}

// migrateNotes decodes the persisted note list one note at a time.
// Notes written before the checklist variant existed carry no type
// discriminant and are rewritten as text notes; individually malformed
// entries are dropped rather than aborting the load.
func migrateNotes(raw json.RawMessage, fallback []models.Note) []models.Note {
	var entries []json.RawMessage

	if err := json.Unmarshal(raw, &entries); err != nil {
		return fallback
	}

	notes := make([]models.Note, 0, len(entries))

	for _, entry := range entries {
		var n models.Note

		if err := json.Unmarshal(entry, &n); err != nil {
			continue
		}

		if n.Type == "" {
			n.Type = models.NoteText
		}

		notes = append(notes, n)
	}

	return notes
}
