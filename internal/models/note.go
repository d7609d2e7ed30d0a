// Package models defines the four synced record collections and the
// snapshot wire format shared by the local store, the merge engine and the
// cloud backup providers. All timestamps are milliseconds since epoch; the
// JSON field names are part of the backup format and must not change.
package models

// NoteType classifies the payload of a note.
type NoteType string

const (
	NoteTypeText    NoteType = "text"
	NoteTypeDrawing NoteType = "drawing"
)

// Note is a single note record. Content holds either HTML rich text or an
// encoded image payload, depending on Type.
type Note struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CreatedAt  int64    `json:"createdAt"`
	UpdatedAt  int64    `json:"updatedAt"`
	Tags       []string `json:"tags,omitempty"`
	IsFavorite bool     `json:"isFavorite,omitempty"`
	Color      string   `json:"color,omitempty"`
	Mood       string   `json:"mood,omitempty"`
	Order      int      `json:"order,omitempty"`
	Type       NoteType `json:"type,omitempty"`
	Deleted    bool     `json:"deleted,omitempty"`
}

// EffectiveTime returns the recency signal used by the merge engine:
// UpdatedAt when set, otherwise CreatedAt, otherwise zero.
func (n Note) EffectiveTime() int64 {
	if n.UpdatedAt != 0 {
		return n.UpdatedAt
	}
	return n.CreatedAt
}
