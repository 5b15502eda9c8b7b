package analytics

import "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/common"

// WindowRequest bounds a report. Unset ends take the report default.
type WindowRequest struct {
	StartDate common.DateTime `query:"start_date"`
	EndDate   common.DateTime `query:"end_date"`
}

// PendingActionItemsRequest represents query parameters for open action items
type PendingActionItemsRequest struct {
	EmployeeID uint `query:"employee_id"`
}

// AnalyzeRequest represents the request to analyze meeting notes
type AnalyzeRequest struct {
	MeetingID uint   `json:"meeting_id" validate:"required"`
	Notes     string `json:"notes" validate:"required"`
}

// TopicTrendsRequest represents query parameters for topic trends
type TopicTrendsRequest struct {
	Months int `query:"months" validate:"min=1,max=24"`
}
