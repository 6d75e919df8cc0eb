// Package models defines the entities persisted by the tracker store.
package models

// NoteType discriminates between the note variants.
type NoteType string

const (
	NoteText NoteType = "text"
	NoteTodo NoteType = "todo"
)

// Theme is the name of a color theme.
type Theme string

const (
	ThemeDarkest Theme = "darkest"
	ThemeNight   Theme = "night"
)

// Valid reports whether t names a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDarkest || t == ThemeNight
}

// Tracker is a named record of accumulated seconds.
type Tracker struct {
	// ID is a unique identifier derived from the creation timestamp.
	ID int64 `json:"id"`

	// Name is the tracker label. Never empty for a saved tracker.
	Name string `json:"name"`

	// Time is the committed duration in seconds.
	Time int `json:"time"`

	// CreatedAt is the creation timestamp in RFC 3339 format.
	CreatedAt string `json:"createdAt"`
}

// TodoItem is a single entry in a checklist note.
type TodoItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Note is either a free-text note or a titled checklist, discriminated
// by Type. Content is meaningful only for text notes; Title and Items
// only for checklists. Persisted notes predating the checklist variant
// carry no Type and are migrated to NoteText on load.
type Note struct {
	ID        int64      `json:"id"`
	Type      NoteType   `json:"type"`
	Content   string     `json:"content,omitempty"`
	Title     string     `json:"title,omitempty"`
	Items     []TodoItem `json:"items,omitempty"`
	CreatedAt string     `json:"createdAt"`
}

// IsTodo reports whether the note is a checklist.
func (n *Note) IsTodo() bool {
	return n.Type == NoteTodo
}
