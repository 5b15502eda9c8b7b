package presenter

import (
	noteDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/note"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// ToNoteResponse converts a QuickNote entity to NoteResponse DTO
func ToNoteResponse(n *entities.QuickNote) *noteDTO.NoteResponse {
	if n == nil {
		return nil
	}
	return &noteDTO.NoteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Category:   string(n.Category),
		PersonID:   n.PersonID,
		PersonName: n.PersonName(),
		IsPinned:   n.IsPinned,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// ToNotesListResponse converts a note list
func ToNotesListResponse(notes []*entities.QuickNote) *noteDTO.NotesListResponse {
	out := make([]*noteDTO.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, ToNoteResponse(n))
	}
	return &noteDTO.NotesListResponse{Notes: out, Total: len(out)}
}
