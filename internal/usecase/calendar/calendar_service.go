package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

const day = 24 * time.Hour

// CalendarService handles calendar meetings and their prep notes
type CalendarService struct {
	calendarRepo repositories.CalendarRepository
	analyzer     analyzer.Service
	archiver     ScreenshotArchiver
	logger       *zap.Logger
	now          func() time.Time
}

// NewCalendarService creates a new calendar service. archiver may be nil.
func NewCalendarService(
	calendarRepo repositories.CalendarRepository,
	analyzer analyzer.Service,
	archiver ScreenshotArchiver,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		calendarRepo: calendarRepo,
		analyzer:     analyzer,
		archiver:     archiver,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Day lists the meetings of one day, earliest first
func (s *CalendarService) Day(ctx context.Context, ownerID uint, targetDate string) ([]*entities.CalendarMeeting, time.Time, error) {
	date, err := s.parseDate(targetDate)
	if err != nil {
		return nil, time.Time{}, err
	}

	meetings, err := s.calendarRepo.ListBetween(ctx, ownerID, date, date.Add(day-time.Nanosecond))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list calendar meetings: %w", err)
	}
	return meetings, date, nil
}

// Week lists the meetings of seven consecutive days
func (s *CalendarService) Week(ctx context.Context, ownerID uint, startDate string) ([]*entities.CalendarMeeting, error) {
	start, err := s.parseDate(startDate)
	if err != nil {
		return nil, err
	}

	meetings, err := s.calendarRepo.ListBetween(ctx, ownerID, start, start.Add(7*day-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar meetings: %w", err)
	}
	return meetings, nil
}

// Get retrieves a calendar meeting with its prep notes
func (s *CalendarService) Get(ctx context.Context, ownerID, id uint) (*entities.CalendarMeeting, error) {
	meeting, err := s.calendarRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrCalendarMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get calendar meeting: %w", err)
	}
	return meeting, nil
}

// Create creates a calendar meeting
func (s *CalendarService) Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.CalendarMeeting, error) {
	meeting, err := newMeeting(ownerID, input)
	if err != nil {
		return nil, err
	}
	if err := s.checkExternalID(ctx, meeting.ExternalID, 0); err != nil {
		return nil, err
	}

	if err := s.calendarRepo.Create(ctx, meeting); err != nil {
		if errors.Is(err, entities.ErrDuplicate) {
			return nil, usecaseErrors.ErrExternalIDTaken
		}
		return nil, fmt.Errorf("failed to create calendar meeting: %w", err)
	}
	meeting.PrepNotes = []entities.PrepNote{}
	return meeting, nil
}

// Update applies the provided fields
func (s *CalendarService) Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.CalendarMeeting, error) {
	meeting, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.ExternalID != nil {
		if err := s.checkExternalID(ctx, input.ExternalID, meeting.ID); err != nil {
			return nil, err
		}
		meeting.ExternalID = input.ExternalID
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		meeting.Title = title
	}
	if input.Description != nil {
		meeting.Description = input.Description
	}
	if input.StartTime != nil {
		meeting.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		meeting.EndTime = *input.EndTime
	}
	if input.Location != nil {
		meeting.Location = input.Location
	}
	if input.Attendees != nil {
		meeting.Attendees = input.Attendees
	}
	if input.CalendarSource != nil {
		if !input.CalendarSource.IsValid() {
			return nil, entities.ErrInvalidSource
		}
		meeting.CalendarSource = *input.CalendarSource
	}
	if input.IsRecurring != nil {
		meeting.IsRecurring = *input.IsRecurring
	}
	if meeting.EndTime.Before(meeting.StartTime) {
		return nil, usecaseErrors.ErrInvalidTimeRange
	}

	if err := s.calendarRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update calendar meeting: %w", err)
	}
	return meeting, nil
}

// Delete removes a calendar meeting with its prep notes
func (s *CalendarService) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.calendarRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete calendar meeting: %w", err)
	}
	return nil
}

// Import creates meetings it has not seen and refreshes the ones whose
// external id is already stored for this owner
func (s *CalendarService) Import(ctx context.Context, ownerID uint, inputs []CreateInput) (*ImportResult, error) {
	result := &ImportResult{Meetings: make([]*entities.CalendarMeeting, 0, len(inputs))}

	for _, input := range inputs {
		incoming, err := newMeeting(ownerID, input)
		if err != nil {
			return nil, err
		}

		var existing *entities.CalendarMeeting
		if incoming.ExternalID != nil {
			existing, err = s.calendarRepo.FindByExternalID(ctx, *incoming.ExternalID)
			if err != nil && !errors.Is(err, entities.ErrNotFound) {
				return nil, fmt.Errorf("failed to look up external id: %w", err)
			}
		}

		if existing == nil {
			if err := s.calendarRepo.Create(ctx, incoming); err != nil {
				return nil, fmt.Errorf("failed to create calendar meeting: %w", err)
			}
			incoming.PrepNotes = []entities.PrepNote{}
			result.Created++
			result.Meetings = append(result.Meetings, incoming)
			continue
		}

		if existing.UserID == nil || *existing.UserID != ownerID {
			return nil, usecaseErrors.ErrExternalIDTaken
		}
		existing.Title = incoming.Title
		existing.Description = incoming.Description
		existing.StartTime = incoming.StartTime
		existing.EndTime = incoming.EndTime
		existing.Location = incoming.Location
		existing.Attendees = incoming.Attendees
		existing.CalendarSource = incoming.CalendarSource
		existing.IsRecurring = incoming.IsRecurring
		if err := s.calendarRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update calendar meeting: %w", err)
		}
		result.Updated++
		result.Meetings = append(result.Meetings, existing)
	}

	s.logger.Info("Calendar import finished",
		zap.Uint("user_id", ownerID),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

// AddPrepNote appends a prep note after the existing ones
func (s *CalendarService) AddPrepNote(ctx context.Context, ownerID, meetingID uint, input PrepNoteInput) (*entities.PrepNote, error) {
	if _, err := s.Get(ctx, ownerID, meetingID); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	count, err := s.calendarRepo.CountPrepNotes(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to count prep notes: %w", err)
	}

	note := &entities.PrepNote{
		CalendarMeetingID: meetingID,
		Content:           content,
		IsCompleted:       input.IsCompleted,
		OrderIndex:        int(count),
	}
	if err := s.calendarRepo.CreatePrepNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create prep note: %w", err)
	}
	return note, nil
}

// UpdatePrepNote applies the provided fields
func (s *CalendarService) UpdatePrepNote(ctx context.Context, ownerID, meetingID, noteID uint, input PrepNoteUpdate) (*entities.PrepNote, error) {
	note, err := s.findPrepNote(ctx, ownerID, meetingID, noteID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		note.Content = content
	}
	if input.IsCompleted != nil {
		note.IsCompleted = *input.IsCompleted
	}

	if err := s.calendarRepo.UpdatePrepNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update prep note: %w", err)
	}
	return note, nil
}

// TogglePrepNote flips the completion flag
func (s *CalendarService) TogglePrepNote(ctx context.Context, ownerID, meetingID, noteID uint) (*entities.PrepNote, error) {
	note, err := s.findPrepNote(ctx, ownerID, meetingID, noteID)
	if err != nil {
		return nil, err
	}

	note.IsCompleted = !note.IsCompleted
	if err := s.calendarRepo.UpdatePrepNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update prep note: %w", err)
	}
	return note, nil
}

// DeletePrepNote removes a prep note. Siblings keep their order_index.
func (s *CalendarService) DeletePrepNote(ctx context.Context, ownerID, meetingID, noteID uint) error {
	if _, err := s.findPrepNote(ctx, ownerID, meetingID, noteID); err != nil {
		return err
	}
	if err := s.calendarRepo.DeletePrepNote(ctx, noteID); err != nil {
		return fmt.Errorf("failed to delete prep note: %w", err)
	}
	return nil
}

// ExtractFromScreenshot archives the image when storage is configured and
// asks the analyzer for the meetings it shows
func (s *CalendarService) ExtractFromScreenshot(ctx context.Context, ownerID uint, image, targetDate string) ([]analyzer.ExtractedMeeting, error) {
	if s.archiver != nil {
		shot, err := analyzer.DecodeScreenshot(image)
		if err != nil {
			return nil, err
		}
		key, err := s.archiver.ArchiveScreenshot(ctx, ownerID, shot.Data, shot.MimeType)
		if err != nil {
			s.logger.Warn("Failed to archive screenshot", zap.Uint("user_id", ownerID), zap.Error(err))
		} else {
			s.logger.Debug("Screenshot archived", zap.String("key", key))
		}
	}

	return s.analyzer.ExtractMeetings(ctx, image, targetDate)
}

func (s *CalendarService) parseDate(value string) (time.Time, error) {
	if value == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, usecaseErrors.ErrInvalidDate
	}
	return date, nil
}

// checkExternalID rejects an external id already used by a meeting other than selfID
func (s *CalendarService) checkExternalID(ctx context.Context, externalID *string, selfID uint) error {
	if externalID == nil {
		return nil
	}
	existing, err := s.calendarRepo.FindByExternalID(ctx, *externalID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up external id: %w", err)
	}
	if existing.ID != selfID {
		return usecaseErrors.ErrExternalIDTaken
	}
	return nil
}

func (s *CalendarService) findPrepNote(ctx context.Context, ownerID, meetingID, noteID uint) (*entities.PrepNote, error) {
	if _, err := s.Get(ctx, ownerID, meetingID); err != nil {
		return nil, err
	}
	note, err := s.calendarRepo.FindPrepNote(ctx, meetingID, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrPrepNoteNotFound
		}
		return nil, fmt.Errorf("failed to get prep note: %w", err)
	}
	return note, nil
}

func newMeeting(ownerID uint, input CreateInput) (*entities.CalendarMeeting, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	if input.EndTime.Before(input.StartTime) {
		return nil, usecaseErrors.ErrInvalidTimeRange
	}
	source := input.CalendarSource
	if source == "" {
		source = entities.CalendarSourceManual
	}
	if !source.IsValid() {
		return nil, entities.ErrInvalidSource
	}

	externalID := input.ExternalID
	if externalID != nil && strings.TrimSpace(*externalID) == "" {
		externalID = nil
	}

	return &entities.CalendarMeeting{
		UserID:         &ownerID,
		ExternalID:     externalID,
		Title:          title,
		Description:    input.Description,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Location:       input.Location,
		Attendees:      input.Attendees,
		CalendarSource: source,
		IsRecurring:    input.IsRecurring,
	}, nil
}
