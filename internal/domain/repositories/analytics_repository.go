package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// AnalyticsRepository provides the read-only queries behind the dashboards
type AnalyticsRepository interface {
	CountActivePeople(ctx context.Context, ownerID uint) (int64, error)

	// MeetingDates returns the dates of meetings in [from, to], optionally for one person
	MeetingDates(ctx context.Context, ownerID uint, employeeID *uint, from, to time.Time) ([]time.Time, error)

	// TopTopics groups topics of meetings in [from, to] by name and category
	TopTopics(ctx context.Context, ownerID uint, employeeID *uint, from, to time.Time, limit int) ([]TopicCount, error)

	SentimentCounts(ctx context.Context, ownerID uint, from, to time.Time) (map[string]int64, error)

	// ActionItemCounts counts a person's action items by status
	ActionItemCounts(ctx context.Context, employeeID uint) (map[entities.Status]int64, error)

	// PendingActionItems returns open action items with meeting and person loaded
	PendingActionItems(ctx context.Context, ownerID uint, employeeID *uint) ([]PendingActionItem, error)

	// TopicOccurrences returns one row per topic with its meeting date
	TopicOccurrences(ctx context.Context, ownerID uint, from, to time.Time) ([]TopicOccurrence, error)
}

// TopicCount is a grouped topic frequency
type TopicCount struct {
	Name     string
	Category *string
	Count    int64
}

// TopicOccurrence is a topic name observed on a given date
type TopicOccurrence struct {
	Name string
	Date time.Time
}

// PendingActionItem joins an action item with its meeting and person
type PendingActionItem struct {
	Item         entities.ActionItem
	EmployeeID   uint
	EmployeeName string
	MeetingDate  time.Time
}
