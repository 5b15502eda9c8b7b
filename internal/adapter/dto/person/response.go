package person

import "time"

// PersonResponse represents a person with read-time aggregates
type PersonResponse struct {
	ID                      uint       `json:"id"`
	Name                    string     `json:"name"`
	Role                    *string    `json:"role"`
	Department              *string    `json:"department"`
	Email                   *string    `json:"email"`
	StartDate               *time.Time `json:"start_date"`
	Notes                   *string    `json:"notes"`
	PersonType              string     `json:"person_type"`
	IsActive                bool       `json:"is_active"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
	MeetingCount            int64      `json:"meeting_count"`
	LastMeetingDate         *time.Time `json:"last_meeting_date"`
	PendingDiscussionTopics int64      `json:"pending_discussion_topics"`
}
