package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// CalendarRepository defines the interface for calendar meetings and their prep notes
type CalendarRepository interface {
	Create(ctx context.Context, meeting *entities.CalendarMeeting) error

	// FindByID loads the meeting with prep notes ordered by order_index
	FindByID(ctx context.Context, ownerID, id uint) (*entities.CalendarMeeting, error)

	// FindByExternalID looks across all owners, external ids are globally unique
	FindByExternalID(ctx context.Context, externalID string) (*entities.CalendarMeeting, error)

	// ListBetween returns meetings starting in [from, to], earliest first
	ListBetween(ctx context.Context, ownerID uint, from, to time.Time) ([]*entities.CalendarMeeting, error)

	Update(ctx context.Context, meeting *entities.CalendarMeeting) error

	// Delete removes the meeting and its prep notes
	Delete(ctx context.Context, id uint) error

	// CountPrepNotes returns the number of notes currently on the meeting
	CountPrepNotes(ctx context.Context, meetingID uint) (int64, error)
	CreatePrepNote(ctx context.Context, note *entities.PrepNote) error
	FindPrepNote(ctx context.Context, meetingID, noteID uint) (*entities.PrepNote, error)
	UpdatePrepNote(ctx context.Context, note *entities.PrepNote) error
	DeletePrepNote(ctx context.Context, id uint) error
}
