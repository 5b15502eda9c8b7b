package task

import "time"

// TaskResponse represents a task in responses.
// AssignedBy fields are only set on the assigned-to-me list.
type TaskResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	TaskType     string     `json:"task_type"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date"`
	PersonID     *uint      `json:"person_id"`
	MeetingID    *uint      `json:"meeting_id"`
	PersonName   *string    `json:"person_name"`
	AssignedBy   *string    `json:"assigned_by"`
	AssignedByID *uint      `json:"assigned_by_id"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TasksListResponse is a page of tasks with status counts over all matches
type TasksListResponse struct {
	Tasks      []*TaskResponse `json:"tasks"`
	Total      int64           `json:"total"`
	Pending    int64           `json:"pending"`
	InProgress int64           `json:"in_progress"`
	Completed  int64           `json:"completed"`
}
