package meetings

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
)

// Service defines the interface for the 1:1 meeting use case
type Service interface {
	List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error)
	Get(ctx context.Context, ownerID, id uint) (*entities.Meeting, error)

	// Create stores the meeting with its nested action items and topics
	Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.Meeting, error)
	Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.Meeting, error)
	Delete(ctx context.Context, ownerID, id uint) error

	AddActionItem(ctx context.Context, ownerID, meetingID uint, input ActionItemInput) (*entities.ActionItem, error)
	UpdateActionItem(ctx context.Context, ownerID, itemID uint, input ActionItemUpdate) (*entities.ActionItem, error)
	DeleteActionItem(ctx context.Context, ownerID, itemID uint) error

	AddTopic(ctx context.Context, ownerID, meetingID uint, input TopicInput) (*entities.Topic, error)
	DeleteTopic(ctx context.Context, ownerID, topicID uint) error

	// ExtractTasks proposes tasks from the meeting notes without storing them
	ExtractTasks(ctx context.Context, ownerID, meetingID uint) ([]analyzer.SuggestedTask, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// CreateInput represents input for creating a meeting
type CreateInput struct {
	EmployeeID      uint
	Date            time.Time
	DurationMinutes int
	Notes           *string
	Summary         *string
	ActionItems     []ActionItemInput
	Topics          []TopicInput
}

// UpdateInput holds the meeting fields to change. Nil means unchanged.
type UpdateInput struct {
	EmployeeID      *uint
	Date            *time.Time
	DurationMinutes *int
	Notes           *string
	Summary         *string
}

// ActionItemInput represents input for creating an action item
type ActionItemInput struct {
	Description string
	Assignee    *string
	DueDate     *time.Time
	Status      entities.Status
	Notes       *string
}

// ActionItemUpdate holds the action item fields to change
type ActionItemUpdate struct {
	Description *string
	Assignee    *string
	DueDate     *time.Time
	Status      *entities.Status
	Notes       *string
}

// TopicInput represents input for creating a topic
type TopicInput struct {
	Name      string
	Category  *string
	Sentiment *string
	Notes     *string
}
