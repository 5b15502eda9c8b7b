package task

import "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/common"

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	TaskType    string           `json:"task_type" validate:"omitempty,oneof=personal discuss_with from_meeting"`
	Priority    string           `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string           `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     *common.DateTime `json:"due_date,omitempty"`
	PersonID    *uint            `json:"person_id,omitempty"`
	MeetingID   *uint            `json:"meeting_id,omitempty"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	TaskType    *string          `json:"task_type,omitempty" validate:"omitempty,oneof=personal discuss_with from_meeting"`
	Priority    *string          `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     *common.DateTime `json:"due_date,omitempty"`
	PersonID    *uint            `json:"person_id,omitempty"`
	MeetingID   *uint            `json:"meeting_id,omitempty"`
}

// ListTasksRequest represents query parameters for listing tasks
type ListTasksRequest struct {
	Skip     int    `query:"skip" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
	TaskType string `query:"task_type" validate:"omitempty,oneof=personal discuss_with from_meeting"`
	Status   string `query:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
	PersonID uint   `query:"person_id"`
}

// MyTasksRequest represents query parameters for the personal task list
type MyTasksRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
}

// IncludeCompletedRequest toggles completed rows in a task list
type IncludeCompletedRequest struct {
	IncludeCompleted bool `query:"include_completed"`
}
