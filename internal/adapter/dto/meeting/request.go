package meeting

import "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/common"

// ActionItemRequest represents an action item to record
type ActionItemRequest struct {
	Description string           `json:"description" validate:"required,min=1"`
	Assignee    *string          `json:"assignee,omitempty" validate:"omitempty,max=100"`
	DueDate     *common.DateTime `json:"due_date,omitempty"`
	Status      string           `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Notes       *string          `json:"notes,omitempty"`
}

// UpdateActionItemRequest represents the request to update an action item
type UpdateActionItemRequest struct {
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Assignee    *string          `json:"assignee,omitempty" validate:"omitempty,max=100"`
	DueDate     *common.DateTime `json:"due_date,omitempty"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Notes       *string          `json:"notes,omitempty"`
}

// TopicRequest represents a discussed topic to record
type TopicRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Sentiment *string `json:"sentiment,omitempty" validate:"omitempty,max=20"`
	Notes     *string `json:"notes,omitempty"`
}

// CreateMeetingRequest represents the request to record a meeting with
// its action items and topics
type CreateMeetingRequest struct {
	EmployeeID      uint                `json:"employee_id" validate:"required"`
	Date            *common.DateTime    `json:"date" validate:"required"`
	DurationMinutes *int                `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Notes           *string             `json:"notes,omitempty"`
	Summary         *string             `json:"summary,omitempty"`
	ActionItems     []ActionItemRequest `json:"action_items,omitempty" validate:"dive"`
	Topics          []TopicRequest      `json:"topics,omitempty" validate:"dive"`
}

// UpdateMeetingRequest represents the request to update a meeting
type UpdateMeetingRequest struct {
	EmployeeID      *uint            `json:"employee_id,omitempty" validate:"omitempty,min=1"`
	Date            *common.DateTime `json:"date,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Notes           *string          `json:"notes,omitempty"`
	Summary         *string          `json:"summary,omitempty"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Skip       int             `query:"skip" validate:"min=0"`
	Limit      int             `query:"limit" validate:"min=1,max=100"`
	EmployeeID uint            `query:"employee_id"`
	StartDate  common.DateTime `query:"start_date"`
	EndDate    common.DateTime `query:"end_date"`
}
