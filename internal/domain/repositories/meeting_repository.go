package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// MeetingRepository defines the interface for 1:1 meeting data access
type MeetingRepository interface {
	// Create inserts the meeting together with its nested action items and topics
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID loads the meeting with person, action items and topics
	FindByID(ctx context.Context, ownerID, id uint) (*entities.Meeting, error)

	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)

	// Update saves the meeting's own columns, never its children
	Update(ctx context.Context, meeting *entities.Meeting) error

	// StoreAnalysis writes the AI columns of one owned meeting in a single
	// statement. A missing meeting yields entities.ErrNotFound.
	StoreAnalysis(ctx context.Context, ownerID, id uint, analysis MeetingAnalysis) error

	// Delete removes the meeting, its action items and topics, and clears
	// meeting_id on tasks that pointed at it
	Delete(ctx context.Context, id uint) error

	CreateActionItem(ctx context.Context, item *entities.ActionItem) error
	FindActionItem(ctx context.Context, ownerID, id uint) (*entities.ActionItem, error)
	UpdateActionItem(ctx context.Context, item *entities.ActionItem) error
	DeleteActionItem(ctx context.Context, id uint) error

	CreateTopic(ctx context.Context, topic *entities.Topic) error
	FindTopic(ctx context.Context, ownerID, id uint) (*entities.Topic, error)
	DeleteTopic(ctx context.Context, id uint) error
}

// MeetingAnalysis holds the analyzer output stored on a meeting
type MeetingAnalysis struct {
	Insights  string
	Sentiment string
	Topics    []string
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	OwnerID    uint
	EmployeeID *uint
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}
