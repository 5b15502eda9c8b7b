package calendar

import "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/common"

// CreateCalendarMeetingRequest represents the request to add a calendar entry
type CreateCalendarMeetingRequest struct {
	ExternalID     *string          `json:"external_id,omitempty" validate:"omitempty,max=255"`
	Title          string           `json:"title" validate:"required,min=1,max=300"`
	Description    *string          `json:"description,omitempty"`
	StartTime      *common.DateTime `json:"start_time" validate:"required"`
	EndTime        *common.DateTime `json:"end_time" validate:"required"`
	Location       *string          `json:"location,omitempty" validate:"omitempty,max=300"`
	Attendees      *string          `json:"attendees,omitempty"`
	CalendarSource string           `json:"calendar_source" validate:"omitempty,oneof=manual google outlook"`
	IsRecurring    bool             `json:"is_recurring"`
}

// UpdateCalendarMeetingRequest represents the request to update a calendar entry
type UpdateCalendarMeetingRequest struct {
	ExternalID     *string          `json:"external_id,omitempty" validate:"omitempty,max=255"`
	Title          *string          `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Description    *string          `json:"description,omitempty"`
	StartTime      *common.DateTime `json:"start_time,omitempty"`
	EndTime        *common.DateTime `json:"end_time,omitempty"`
	Location       *string          `json:"location,omitempty" validate:"omitempty,max=300"`
	Attendees      *string          `json:"attendees,omitempty"`
	CalendarSource *string          `json:"calendar_source,omitempty" validate:"omitempty,oneof=manual google outlook"`
	IsRecurring    *bool            `json:"is_recurring,omitempty"`
}

// ImportCalendarRequest carries a batch from an external calendar
type ImportCalendarRequest struct {
	Meetings []CreateCalendarMeetingRequest `json:"meetings" validate:"required,min=1,dive"`
}

// DayRequest represents query parameters for the day view
type DayRequest struct {
	TargetDate string `query:"target_date"`
}

// WeekRequest represents query parameters for the week view
type WeekRequest struct {
	StartDate string `query:"start_date"`
}

// PrepNoteRequest represents the request to add a prep note
type PrepNoteRequest struct {
	Content     string `json:"content" validate:"required,min=1"`
	IsCompleted bool   `json:"is_completed"`
}

// UpdatePrepNoteRequest represents the request to update a prep note
type UpdatePrepNoteRequest struct {
	Content     *string `json:"content,omitempty" validate:"omitempty,min=1"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// ScreenshotRequest carries a calendar screenshot as base64 or a data URL
type ScreenshotRequest struct {
	Image      string `json:"image" validate:"required"`
	TargetDate string `json:"target_date"`
}
