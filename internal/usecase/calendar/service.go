package calendar

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
)

// DateLayout is the day format accepted by the calendar queries
const DateLayout = "2006-01-02"

// Service defines the interface for the calendar use case
type Service interface {
	// Day returns the meetings starting on targetDate (YYYY-MM-DD, empty means today)
	Day(ctx context.Context, ownerID uint, targetDate string) ([]*entities.CalendarMeeting, time.Time, error)

	// Week returns the meetings of the seven days beginning at startDate
	Week(ctx context.Context, ownerID uint, startDate string) ([]*entities.CalendarMeeting, error)

	Get(ctx context.Context, ownerID, id uint) (*entities.CalendarMeeting, error)
	Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.CalendarMeeting, error)
	Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.CalendarMeeting, error)
	Delete(ctx context.Context, ownerID, id uint) error

	// Import upserts meetings by external id
	Import(ctx context.Context, ownerID uint, inputs []CreateInput) (*ImportResult, error)

	AddPrepNote(ctx context.Context, ownerID, meetingID uint, input PrepNoteInput) (*entities.PrepNote, error)
	UpdatePrepNote(ctx context.Context, ownerID, meetingID, noteID uint, input PrepNoteUpdate) (*entities.PrepNote, error)
	TogglePrepNote(ctx context.Context, ownerID, meetingID, noteID uint) (*entities.PrepNote, error)
	DeletePrepNote(ctx context.Context, ownerID, meetingID, noteID uint) error

	// ExtractFromScreenshot reads calendar entries from an uploaded image
	ExtractFromScreenshot(ctx context.Context, ownerID uint, image, targetDate string) ([]analyzer.ExtractedMeeting, error)
}

// Ensure CalendarService implements Service interface
var _ Service = (*CalendarService)(nil)

// ScreenshotArchiver keeps a copy of uploaded screenshots
type ScreenshotArchiver interface {
	ArchiveScreenshot(ctx context.Context, ownerID uint, data []byte, contentType string) (string, error)
}

// CreateInput represents input for creating a calendar meeting
type CreateInput struct {
	ExternalID     *string
	Title          string
	Description    *string
	StartTime      time.Time
	EndTime        time.Time
	Location       *string
	Attendees      *string
	CalendarSource entities.CalendarSource
	IsRecurring    bool
}

// UpdateInput holds the fields to change. Nil means unchanged.
type UpdateInput struct {
	ExternalID     *string
	Title          *string
	Description    *string
	StartTime      *time.Time
	EndTime        *time.Time
	Location       *string
	Attendees      *string
	CalendarSource *entities.CalendarSource
	IsRecurring    *bool
}

// PrepNoteInput represents input for adding a prep note
type PrepNoteInput struct {
	Content     string
	IsCompleted bool
}

// PrepNoteUpdate holds the prep note fields to change
type PrepNoteUpdate struct {
	Content     *string
	IsCompleted *bool
}

// ImportResult reports what an import changed
type ImportResult struct {
	Created  int
	Updated  int
	Meetings []*entities.CalendarMeeting
}
