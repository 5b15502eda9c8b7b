package repositories

import (
	"context"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// NoteRepository defines the interface for quick note data access
type NoteRepository interface {
	Create(ctx context.Context, note *entities.QuickNote) error
	FindByID(ctx context.Context, ownerID, id uint) (*entities.QuickNote, error)
	Update(ctx context.Context, note *entities.QuickNote) error
	Delete(ctx context.Context, id uint) error

	// List returns pinned notes first, then most recently updated
	List(ctx context.Context, filters NoteFilters) ([]*entities.QuickNote, error)
}

// NoteFilters represents filter options for listing notes
type NoteFilters struct {
	OwnerID    uint
	Category   *entities.NoteCategory
	PersonID   *uint
	Search     string // title, content
	PinnedOnly bool
}
