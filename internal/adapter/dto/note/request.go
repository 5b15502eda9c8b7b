package note

// CreateNoteRequest represents the request to save a quick note
type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required,min=1"`
	Category string `json:"category" validate:"omitempty,oneof=general link credential contact snippet"`
	PersonID *uint  `json:"person_id,omitempty"`
	IsPinned bool   `json:"is_pinned"`
}

// UpdateNoteRequest represents the request to update a quick note
type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=general link credential contact snippet"`
	PersonID *uint   `json:"person_id,omitempty"`
	IsPinned *bool   `json:"is_pinned,omitempty"`
}

// ListNotesRequest represents query parameters for listing notes
type ListNotesRequest struct {
	Category   string `query:"category" validate:"omitempty,oneof=general link credential contact snippet"`
	PersonID   uint   `query:"person_id"`
	Search     string `query:"search"`
	PinnedOnly bool   `query:"pinned_only"`
}
