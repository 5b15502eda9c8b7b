package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
)

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	base
}

// NewNoteRepository creates a new quick note repository
func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &noteRepository{base{db: db}}
}

// Create creates a quick note
func (r *noteRepository) Create(ctx context.Context, note *entities.QuickNote) error {
	return r.conn(ctx).Omit(clause.Associations).Create(note).Error
}

// FindByID retrieves a quick note with its person
func (r *noteRepository) FindByID(ctx context.Context, ownerID, id uint) (*entities.QuickNote, error) {
	var note entities.QuickNote
	err := r.conn(ctx).
		Preload("Person").
		Scopes(ownedBy("quick_notes", ownerID)).
		Where("quick_notes.id = ?", id).
		First(&note).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &note, nil
}

// Update saves the note columns
func (r *noteRepository) Update(ctx context.Context, note *entities.QuickNote) error {
	return r.conn(ctx).Omit(clause.Associations).Save(note).Error
}

// Delete removes a quick note
func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&entities.QuickNote{}, id).Error
}

// List retrieves notes, pinned first then most recently updated
func (r *noteRepository) List(ctx context.Context, filters repositories.NoteFilters) ([]*entities.QuickNote, error) {
	query := r.conn(ctx).
		Preload("Person").
		Scopes(ownedBy("quick_notes", filters.OwnerID))

	if filters.Category != nil {
		query = query.Where("quick_notes.category = ?", *filters.Category)
	}
	if filters.PersonID != nil {
		query = query.Where("quick_notes.person_id = ?", *filters.PersonID)
	}
	if filters.Search != "" {
		pattern := containsPattern(filters.Search)
		query = query.Where(
			`LOWER(quick_notes.title) LIKE ? ESCAPE '\' OR LOWER(quick_notes.content) LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}
	if filters.PinnedOnly {
		query = query.Where("quick_notes.is_pinned = ?", true)
	}

	var notes []*entities.QuickNote
	err := query.
		Order("quick_notes.is_pinned DESC").
		Order("quick_notes.updated_at DESC").Order("quick_notes.id DESC").
		Find(&notes).Error
	return notes, err
}
