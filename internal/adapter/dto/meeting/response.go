package meeting

import (
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
)

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID          uint       `json:"id"`
	MeetingID   uint       `json:"meeting_id"`
	Description string     `json:"description"`
	Assignee    *string    `json:"assignee"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TopicResponse represents a topic in responses
type TopicResponse struct {
	ID        uint      `json:"id"`
	MeetingID uint      `json:"meeting_id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	Sentiment *string   `json:"sentiment"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// MeetingResponse represents a meeting with its children.
// AITopics is the stored JSON text of the analyzed topic list.
type MeetingResponse struct {
	ID              uint                  `json:"id"`
	EmployeeID      uint                  `json:"employee_id"`
	EmployeeName    *string               `json:"employee_name"`
	Date            time.Time             `json:"date"`
	DurationMinutes int                   `json:"duration_minutes"`
	Notes           *string               `json:"notes"`
	Summary         *string               `json:"summary"`
	AIInsights      *string               `json:"ai_insights"`
	AITopics        *string               `json:"ai_topics"`
	AISentiment     *string               `json:"ai_sentiment"`
	ActionItems     []*ActionItemResponse `json:"action_items"`
	Topics          []*TopicResponse      `json:"topics"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ExtractTasksResponse lists tasks proposed from the meeting notes
type ExtractTasksResponse struct {
	SuggestedTasks []analyzer.SuggestedTask `json:"suggested_tasks"`
}
