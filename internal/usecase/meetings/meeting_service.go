package meetings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

const defaultDurationMinutes = 30

// MeetingService handles 1:1 meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	personRepo  repositories.PersonRepository
	analyzer    analyzer.Service
	now         func() time.Time
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	personRepo repositories.PersonRepository,
	analyzer analyzer.Service,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		personRepo:  personRepo,
		analyzer:    analyzer,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List retrieves meetings newest first
func (s *MeetingService) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Get retrieves a meeting with its children
func (s *MeetingService) Get(ctx context.Context, ownerID, id uint) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// Create creates a meeting for one of the owner's people
func (s *MeetingService) Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.Meeting, error) {
	if err := s.checkPerson(ctx, ownerID, input.EmployeeID); err != nil {
		return nil, err
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	meeting := &entities.Meeting{
		UserID:          &ownerID,
		EmployeeID:      input.EmployeeID,
		Date:            input.Date,
		DurationMinutes: duration,
		Notes:           input.Notes,
		Summary:         input.Summary,
	}

	now := s.now()
	for _, in := range input.ActionItems {
		item, err := newActionItem(0, in, now)
		if err != nil {
			return nil, err
		}
		meeting.ActionItems = append(meeting.ActionItems, *item)
	}
	for _, in := range input.Topics {
		topic, err := newTopic(0, in)
		if err != nil {
			return nil, err
		}
		meeting.Topics = append(meeting.Topics, *topic)
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, err
	}

	return s.Get(ctx, ownerID, meeting.ID)
}

// Update applies the provided fields
func (s *MeetingService) Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.Meeting, error) {
	meeting, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.EmployeeID != nil && *input.EmployeeID != meeting.EmployeeID {
		if err := s.checkPerson(ctx, ownerID, *input.EmployeeID); err != nil {
			return nil, err
		}
		meeting.EmployeeID = *input.EmployeeID
		meeting.Employee = nil
	}
	if input.Date != nil {
		meeting.Date = *input.Date
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, usecaseErrors.ErrInvalidInput
		}
		meeting.DurationMinutes = *input.DurationMinutes
	}
	if input.Notes != nil {
		meeting.Notes = input.Notes
	}
	if input.Summary != nil {
		meeting.Summary = input.Summary
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return s.Get(ctx, ownerID, id)
}

// Delete removes a meeting with its action items and topics
func (s *MeetingService) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// AddActionItem adds an action item to a meeting
func (s *MeetingService) AddActionItem(ctx context.Context, ownerID, meetingID uint, input ActionItemInput) (*entities.ActionItem, error) {
	if _, err := s.Get(ctx, ownerID, meetingID); err != nil {
		return nil, err
	}

	item, err := newActionItem(meetingID, input, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.meetingRepo.CreateActionItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}
	return item, nil
}

// UpdateActionItem applies the provided fields, stamping completion
func (s *MeetingService) UpdateActionItem(ctx context.Context, ownerID, itemID uint, input ActionItemUpdate) (*entities.ActionItem, error) {
	item, err := s.findActionItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		item.Description = description
	}
	if input.Assignee != nil {
		item.Assignee = input.Assignee
	}
	if input.DueDate != nil {
		item.DueDate = input.DueDate
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, entities.ErrInvalidStatus
		}
		item.SetStatus(*input.Status, s.now())
	}

	if err := s.meetingRepo.UpdateActionItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// DeleteActionItem removes an action item
func (s *MeetingService) DeleteActionItem(ctx context.Context, ownerID, itemID uint) error {
	if _, err := s.findActionItem(ctx, ownerID, itemID); err != nil {
		return err
	}
	if err := s.meetingRepo.DeleteActionItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	return nil
}

// AddTopic adds a topic to a meeting
func (s *MeetingService) AddTopic(ctx context.Context, ownerID, meetingID uint, input TopicInput) (*entities.Topic, error) {
	if _, err := s.Get(ctx, ownerID, meetingID); err != nil {
		return nil, err
	}

	topic, err := newTopic(meetingID, input)
	if err != nil {
		return nil, err
	}
	if err := s.meetingRepo.CreateTopic(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return topic, nil
}

// DeleteTopic removes a topic
func (s *MeetingService) DeleteTopic(ctx context.Context, ownerID, topicID uint) error {
	if _, err := s.meetingRepo.FindTopic(ctx, ownerID, topicID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return usecaseErrors.ErrTopicNotFound
		}
		return fmt.Errorf("failed to get topic: %w", err)
	}
	if err := s.meetingRepo.DeleteTopic(ctx, topicID); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}

// ExtractTasks suggests tasks from the meeting notes
func (s *MeetingService) ExtractTasks(ctx context.Context, ownerID, meetingID uint) ([]analyzer.SuggestedTask, error) {
	meeting, err := s.Get(ctx, ownerID, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Notes == nil || strings.TrimSpace(*meeting.Notes) == "" {
		return []analyzer.SuggestedTask{}, nil
	}

	personID, id := meeting.EmployeeID, meeting.ID
	return s.analyzer.ExtractTasks(ctx, *meeting.Notes, &personID, &id), nil
}

func (s *MeetingService) checkPerson(ctx context.Context, ownerID, personID uint) error {
	if _, err := s.personRepo.FindByID(ctx, ownerID, personID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return usecaseErrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to get person: %w", err)
	}
	return nil
}

func (s *MeetingService) findActionItem(ctx context.Context, ownerID, itemID uint) (*entities.ActionItem, error) {
	item, err := s.meetingRepo.FindActionItem(ctx, ownerID, itemID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}
	return item, nil
}

func newActionItem(meetingID uint, input ActionItemInput, now time.Time) (*entities.ActionItem, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	item := &entities.ActionItem{
		MeetingID:   meetingID,
		Description: description,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
		Status:      entities.StatusPending,
		Notes:       input.Notes,
	}
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, entities.ErrInvalidStatus
		}
		item.SetStatus(input.Status, now)
	}
	return item, nil
}

func newTopic(meetingID uint, input TopicInput) (*entities.Topic, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	return &entities.Topic{
		MeetingID: meetingID,
		Name:      name,
		Category:  input.Category,
		Sentiment: input.Sentiment,
		Notes:     input.Notes,
	}, nil
}
