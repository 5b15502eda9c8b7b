package entities

import "time"

// TaskType classifies where a task came from
type TaskType string

const (
	TaskTypePersonal    TaskType = "personal"
	TaskTypeDiscussWith TaskType = "discuss_with"
	TaskTypeFromMeeting TaskType = "from_meeting"
)

// IsValid checks if the task type is valid
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypePersonal, TaskTypeDiscussWith, TaskTypeFromMeeting:
		return true
	}
	return false
}

// Task is a free-form to-do, optionally tied to a person and/or meeting
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      *uint      `json:"user_id,omitempty" gorm:"index"`
	User        *User      `json:"-" gorm:"foreignKey:UserID"`
	Title       string     `json:"title" gorm:"type:varchar(200);not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	TaskType    TaskType   `json:"task_type" gorm:"type:varchar(20);not null;default:'personal';index"`
	Priority    Priority   `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PersonID    *uint      `json:"person_id,omitempty" gorm:"index"`
	Person      *Person    `json:"-" gorm:"foreignKey:PersonID"`
	MeetingID   *uint      `json:"meeting_id,omitempty" gorm:"index"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"index"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// SetStatus moves the task to s, stamping completed_at on completion
func (t *Task) SetStatus(s Status, now time.Time) {
	t.CompletedAt = completionTime(t.Status, s, t.CompletedAt, now)
	t.Status = s
}

// PersonName returns the loaded person's name if present
func (t *Task) PersonName() *string {
	if t.Person == nil {
		return nil
	}
	name := t.Person.Name
	return &name
}
