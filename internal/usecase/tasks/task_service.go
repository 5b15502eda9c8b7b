package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

const maxTitleLength = 200

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repositories.TaskRepository
	personRepo  repositories.PersonRepository
	meetingRepo repositories.MeetingRepository
	attribution *attribution.Service
	now         func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repositories.TaskRepository,
	personRepo repositories.PersonRepository,
	meetingRepo repositories.MeetingRepository,
	attribution *attribution.Service,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		personRepo:  personRepo,
		meetingRepo: meetingRepo,
		attribution: attribution,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List retrieves a page of tasks with status counts
func (s *TaskService) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, repositories.TaskCounts, error) {
	tasks, counts, err := s.taskRepo.List(ctx, filters)
	if err != nil {
		return nil, counts, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, counts, nil
}

// My retrieves personal tasks
func (s *TaskService) My(ctx context.Context, ownerID uint, status *entities.Status) ([]*entities.Task, error) {
	if status != nil && !status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}
	tasks, err := s.taskRepo.ListPersonal(ctx, ownerID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal tasks: %w", err)
	}
	return tasks, nil
}

// DiscussWith retrieves discuss_with tasks for one of the owner's people
func (s *TaskService) DiscussWith(ctx context.Context, ownerID, personID uint, includeCompleted bool) ([]*entities.Task, error) {
	if _, err := s.findPerson(ctx, ownerID, personID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListDiscussWith(ctx, ownerID, personID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list discussion tasks: %w", err)
	}
	return tasks, nil
}

// Today retrieves open tasks due by 23:59:59 today
func (s *TaskService) Today(ctx context.Context, ownerID uint) ([]*entities.Task, error) {
	now := s.now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())

	tasks, err := s.taskRepo.ListDueBefore(ctx, ownerID, nextMidnight)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks due today: %w", err)
	}
	return tasks, nil
}

// AssignedToMe delegates to name-matching attribution
func (s *TaskService) AssignedToMe(ctx context.Context, userID uint, includeCompleted bool) ([]attribution.AssignedTask, error) {
	return s.attribution.AssignedToMe(ctx, userID, includeCompleted)
}

// Get retrieves a task with its person
func (s *TaskService) Get(ctx context.Context, ownerID, id uint) (*entities.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// Create creates a task after checking its person and meeting
func (s *TaskService) Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.Task, error) {
	task, err := s.build(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// CreateBulk validates every input before inserting any of them
func (s *TaskService) CreateBulk(ctx context.Context, ownerID uint, inputs []CreateInput) ([]*entities.Task, error) {
	tasks := make([]*entities.Task, 0, len(inputs))
	for _, input := range inputs {
		task, err := s.build(ctx, ownerID, input)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to create tasks: %w", err)
	}
	return tasks, nil
}

// Update applies the provided fields, stamping completion
func (s *TaskService) Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.Task, error) {
	task, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := normalizeTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.TaskType != nil {
		if !input.TaskType.IsValid() {
			return nil, entities.ErrInvalidTaskType
		}
		task.TaskType = *input.TaskType
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, entities.ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.PersonID != nil {
		person, err := s.findPerson(ctx, ownerID, *input.PersonID)
		if err != nil {
			return nil, err
		}
		task.PersonID = &person.ID
		task.Person = person
	}
	if input.MeetingID != nil {
		if err := s.checkMeeting(ctx, ownerID, *input.MeetingID); err != nil {
			return nil, err
		}
		task.MeetingID = input.MeetingID
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, entities.ErrInvalidStatus
		}
		task.SetStatus(*input.Status, s.now())
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Complete marks the task completed
func (s *TaskService) Complete(ctx context.Context, ownerID, id uint) (*entities.Task, error) {
	status := entities.StatusCompleted
	return s.Update(ctx, ownerID, id, UpdateInput{Status: &status})
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) build(ctx context.Context, ownerID uint, input CreateInput) (*entities.Task, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	task := &entities.Task{
		UserID:      &ownerID,
		Title:       title,
		Description: input.Description,
		TaskType:    input.TaskType,
		Priority:    input.Priority,
		Status:      entities.StatusPending,
		MeetingID:   input.MeetingID,
		DueDate:     input.DueDate,
	}
	if task.TaskType == "" {
		task.TaskType = entities.TaskTypePersonal
	}
	if !task.TaskType.IsValid() {
		return nil, entities.ErrInvalidTaskType
	}
	if task.Priority == "" {
		task.Priority = entities.PriorityMedium
	}
	if !task.Priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, entities.ErrInvalidStatus
		}
		task.SetStatus(input.Status, s.now())
	}

	if input.PersonID != nil {
		person, err := s.findPerson(ctx, ownerID, *input.PersonID)
		if err != nil {
			return nil, err
		}
		task.PersonID = &person.ID
		task.Person = person
	}
	if input.MeetingID != nil {
		if err := s.checkMeeting(ctx, ownerID, *input.MeetingID); err != nil {
			return nil, err
		}
	}
	return task, nil
}

func (s *TaskService) findPerson(ctx context.Context, ownerID, personID uint) (*entities.Person, error) {
	person, err := s.personRepo.FindByID(ctx, ownerID, personID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

func (s *TaskService) checkMeeting(ctx context.Context, ownerID, meetingID uint) error {
	if _, err := s.meetingRepo.FindByID(ctx, ownerID, meetingID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to get meeting: %w", err)
	}
	return nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > maxTitleLength {
		return "", usecaseErrors.ErrInvalidInput
	}
	return title, nil
}
