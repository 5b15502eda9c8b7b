package analyzer

import (
	"context"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Service defines the AI-assisted text operations
type Service interface {
	// Analyze never fails; without a usable LLM reply it runs the keyword rules
	Analyze(ctx context.Context, notes string) *Analysis

	// ExtractTasks never fails; without a usable LLM reply it runs the line patterns
	ExtractTasks(ctx context.Context, notes string, personID, meetingID *uint) []SuggestedTask

	// ExtractMeetings reads calendar entries from a base64 or data URL
	// screenshot. Without any vision provider it returns SampleMeetings.
	ExtractMeetings(ctx context.Context, image string, targetDate string) ([]ExtractedMeeting, error)
}

// Analysis is the outcome of analyzing meeting notes
type Analysis struct {
	Insights             string   `json:"insights"`
	Topics               []string `json:"topics"`
	Sentiment            string   `json:"sentiment"`
	ActionItemsSuggested []string `json:"action_items_suggested"`
}

// SuggestedTask is a task proposed from notes, not yet stored
type SuggestedTask struct {
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	TaskType    entities.TaskType `json:"task_type"`
	Priority    entities.Priority `json:"priority"`
	PersonID    *uint             `json:"person_id,omitempty"`
	MeetingID   *uint             `json:"meeting_id,omitempty"`
}

// ExtractedMeeting is a calendar entry read from a screenshot
type ExtractedMeeting struct {
	Title     string  `json:"title"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Location  *string `json:"location,omitempty"`
	Attendees *string `json:"attendees,omitempty"`
}

// ScreenshotImage is a decoded screenshot
type ScreenshotImage struct {
	Data     []byte
	MimeType string
}

// SampleMeetings is returned by ExtractMeetings when no vision provider is
// configured. It is a fixed placeholder, not an extraction.
func SampleMeetings() []ExtractedMeeting {
	attendees := "צוות פיתוח"
	return []ExtractedMeeting{
		{Title: "ישיבת צוות", StartTime: "09:00", EndTime: "10:00", Attendees: &attendees},
		{Title: "1:1 עם מנהל", StartTime: "11:00", EndTime: "11:30"},
	}
}

// Ensure Analyzer implements Service interface
var _ Service = (*Analyzer)(nil)
