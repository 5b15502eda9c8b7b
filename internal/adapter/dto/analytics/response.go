package analytics

import "time"

// TopicFrequencyResponse counts one topic name
type TopicFrequencyResponse struct {
	Topic    string  `json:"topic"`
	Count    int64   `json:"count"`
	Category *string `json:"category"`
}

// OverviewResponse is the dashboard summary
type OverviewResponse struct {
	TotalEmployees        int64                     `json:"total_employees"`
	TotalMeetings         int64                     `json:"total_meetings"`
	TopTopics             []*TopicFrequencyResponse `json:"top_topics"`
	SentimentDistribution map[string]int64          `json:"sentiment_distribution"`
	MeetingsPerMonth      map[string]int64          `json:"meetings_per_month"`
}

// EmployeeAnalyticsResponse is the per-person report
type EmployeeAnalyticsResponse struct {
	EmployeeID           uint                      `json:"employee_id"`
	EmployeeName         string                    `json:"employee_name"`
	TotalMeetings        int64                     `json:"total_meetings"`
	TopTopics            []*TopicFrequencyResponse `json:"top_topics"`
	PendingActionItems   int64                     `json:"pending_action_items"`
	CompletedActionItems int64                     `json:"completed_action_items"`
}

// PendingActionItemResponse is an open action item with its meeting context
type PendingActionItemResponse struct {
	ID           uint       `json:"id"`
	Description  string     `json:"description"`
	Assignee     *string    `json:"assignee"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `json:"status"`
	EmployeeID   uint       `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	MeetingDate  time.Time  `json:"meeting_date"`
}
