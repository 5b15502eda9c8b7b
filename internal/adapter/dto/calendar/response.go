package calendar

import (
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
)

// PrepNoteResponse represents a prep note in responses
type PrepNoteResponse struct {
	ID                uint      `json:"id"`
	CalendarMeetingID uint      `json:"calendar_meeting_id"`
	Content           string    `json:"content"`
	IsCompleted       bool      `json:"is_completed"`
	OrderIndex        int       `json:"order_index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CalendarMeetingResponse represents a calendar entry with its prep notes
type CalendarMeetingResponse struct {
	ID             uint                `json:"id"`
	ExternalID     *string             `json:"external_id"`
	Title          string              `json:"title"`
	Description    *string             `json:"description"`
	StartTime      time.Time           `json:"start_time"`
	EndTime        time.Time           `json:"end_time"`
	Location       *string             `json:"location"`
	Attendees      *string             `json:"attendees"`
	CalendarSource string              `json:"calendar_source"`
	IsRecurring    bool                `json:"is_recurring"`
	PrepNotes      []*PrepNoteResponse `json:"prep_notes"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// CalendarMeetingsListResponse is the day view
type CalendarMeetingsListResponse struct {
	Meetings []*CalendarMeetingResponse `json:"meetings"`
	Total    int                        `json:"total"`
	Date     string                     `json:"date"`
}

// ImportResponse reports what an import changed
type ImportResponse struct {
	Created  int                        `json:"created"`
	Updated  int                        `json:"updated"`
	Meetings []*CalendarMeetingResponse `json:"meetings"`
}

// ScreenshotResponse lists the entries read from a screenshot
type ScreenshotResponse struct {
	Meetings []analyzer.ExtractedMeeting `json:"meetings"`
	Total    int                         `json:"total"`
}
