package entities

import "time"

// Status is the lifecycle state shared by tasks and action items
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether work is still outstanding
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}

// Priority represents task urgency
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities, higher is more urgent. Unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// completionTime returns the completed_at value after moving from current to next.
// Entering completed stamps now; any other move keeps the previous value.
func completionTime(current, next Status, completedAt *time.Time, now time.Time) *time.Time {
	if next == StatusCompleted && (current != StatusCompleted || completedAt == nil) {
		return &now
	}
	return completedAt
}
