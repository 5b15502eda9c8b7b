package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

// Service defines the interface for the quick notes use case
type Service interface {
	List(ctx context.Context, filters repositories.NoteFilters) ([]*entities.QuickNote, error)
	Get(ctx context.Context, ownerID, id uint) (*entities.QuickNote, error)
	Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.QuickNote, error)
	Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.QuickNote, error)
	TogglePin(ctx context.Context, ownerID, id uint) (*entities.QuickNote, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// Ensure NoteService implements Service interface
var _ Service = (*NoteService)(nil)

// CreateInput represents input for creating a note
type CreateInput struct {
	Title    string
	Content  string
	Category entities.NoteCategory
	PersonID *uint
	IsPinned bool
}

// UpdateInput holds the fields to change. Nil means unchanged.
type UpdateInput struct {
	Title    *string
	Content  *string
	Category *entities.NoteCategory
	PersonID *uint
	IsPinned *bool
}

// NoteService handles quick note business logic
type NoteService struct {
	noteRepo   repositories.NoteRepository
	personRepo repositories.PersonRepository
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo repositories.NoteRepository, personRepo repositories.PersonRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo, personRepo: personRepo}
}

// List retrieves notes, pinned first
func (s *NoteService) List(ctx context.Context, filters repositories.NoteFilters) ([]*entities.QuickNote, error) {
	if filters.Category != nil && !filters.Category.IsValid() {
		return nil, entities.ErrInvalidCategory
	}
	notes, err := s.noteRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Get retrieves a note with its person
func (s *NoteService) Get(ctx context.Context, ownerID, id uint) (*entities.QuickNote, error) {
	note, err := s.noteRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// Create creates a note, checking the linked person
func (s *NoteService) Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.QuickNote, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	category := input.Category
	if category == "" {
		category = entities.NoteCategoryGeneral
	}
	if !category.IsValid() {
		return nil, entities.ErrInvalidCategory
	}

	note := &entities.QuickNote{
		UserID:   &ownerID,
		Title:    title,
		Content:  input.Content,
		Category: category,
		IsPinned: input.IsPinned,
	}
	if input.PersonID != nil {
		person, err := s.findPerson(ctx, ownerID, *input.PersonID)
		if err != nil {
			return nil, err
		}
		note.PersonID = &person.ID
		note.Person = person
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// Update applies the provided fields
func (s *NoteService) Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.QuickNote, error) {
	note, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		note.Title = title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		note.Content = *input.Content
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, entities.ErrInvalidCategory
		}
		note.Category = *input.Category
	}
	if input.PersonID != nil {
		person, err := s.findPerson(ctx, ownerID, *input.PersonID)
		if err != nil {
			return nil, err
		}
		note.PersonID = &person.ID
		note.Person = person
	}
	if input.IsPinned != nil {
		note.IsPinned = *input.IsPinned
	}

	return note, s.save(ctx, note)
}

// TogglePin flips the pinned flag
func (s *NoteService) TogglePin(ctx context.Context, ownerID, id uint) (*entities.QuickNote, error) {
	note, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	note.IsPinned = !note.IsPinned
	return note, s.save(ctx, note)
}

// Delete removes a note
func (s *NoteService) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (s *NoteService) save(ctx context.Context, note *entities.QuickNote) error {
	if err := s.noteRepo.Update(ctx, note); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

func (s *NoteService) findPerson(ctx context.Context, ownerID, personID uint) (*entities.Person, error) {
	person, err := s.personRepo.FindByID(ctx, ownerID, personID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}
