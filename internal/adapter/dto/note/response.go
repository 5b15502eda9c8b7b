package note

import "time"

// NoteResponse represents a quick note in responses
type NoteResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	PersonID   *uint     `json:"person_id"`
	PersonName *string   `json:"person_name"`
	IsPinned   bool      `json:"is_pinned"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NotesListResponse wraps a note list with its size
type NotesListResponse struct {
	Notes []*NoteResponse `json:"notes"`
	Total int             `json:"total"`
}
