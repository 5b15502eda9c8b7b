package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Meeting is a 1:1 held with a person
type Meeting struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          *uint          `json:"user_id,omitempty" gorm:"index"`
	EmployeeID      uint           `json:"employee_id" gorm:"not null;index"`
	Employee        *Person        `json:"-" gorm:"foreignKey:EmployeeID"`
	Date            time.Time      `json:"date" gorm:"not null;index"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null;default:30"`
	Notes           *string        `json:"notes,omitempty" gorm:"type:text"`
	Summary         *string        `json:"summary,omitempty" gorm:"type:text"`
	AIInsights      *string        `json:"ai_insights,omitempty" gorm:"type:text"`
	AITopics        datatypes.JSON `json:"ai_topics,omitempty"`
	AISentiment     *string        `json:"ai_sentiment,omitempty" gorm:"type:varchar(50)"`
	ActionItems     []ActionItem   `json:"action_items" gorm:"foreignKey:MeetingID"`
	Topics          []Topic        `json:"topics" gorm:"foreignKey:MeetingID"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// TopicList decodes the stored AI topic list. Bad or empty data yields nil.
func (m *Meeting) TopicList() []string {
	if len(m.AITopics) == 0 {
		return nil
	}
	var topics []string
	if err := json.Unmarshal(m.AITopics, &topics); err != nil {
		return nil
	}
	return topics
}

// SetTopicList stores the AI topic list as JSON
func (m *Meeting) SetTopicList(topics []string) {
	if topics == nil {
		topics = []string{}
	}
	raw, _ := json.Marshal(topics)
	m.AITopics = datatypes.JSON(raw)
}

// EmployeeName returns the loaded person's name if present
func (m *Meeting) EmployeeName() *string {
	if m.Employee == nil {
		return nil
	}
	name := m.Employee.Name
	return &name
}

// ActionItem is a follow-up obligation recorded in a meeting
type ActionItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	MeetingID   uint       `json:"meeting_id" gorm:"not null;index"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Assignee    *string    `json:"assignee,omitempty" gorm:"type:varchar(100)"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       *string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// SetStatus moves the item to s, stamping completed_at on completion
func (a *ActionItem) SetStatus(s Status, now time.Time) {
	a.CompletedAt = completionTime(a.Status, s, a.CompletedAt, now)
	a.Status = s
}

// Topic is a subject discussed in a meeting
type Topic struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MeetingID uint      `json:"meeting_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Category  *string   `json:"category,omitempty" gorm:"type:varchar(50)"`
	Sentiment *string   `json:"sentiment,omitempty" gorm:"type:varchar(20)"`
	Notes     *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
