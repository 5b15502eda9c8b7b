package entities

import "time"

// CalendarSource tags where a calendar entry originated
type CalendarSource string

const (
	CalendarSourceManual  CalendarSource = "manual"
	CalendarSourceGoogle  CalendarSource = "google"
	CalendarSourceOutlook CalendarSource = "outlook"
)

// IsValid checks if the calendar source is valid
func (s CalendarSource) IsValid() bool {
	switch s {
	case CalendarSourceManual, CalendarSourceGoogle, CalendarSourceOutlook:
		return true
	}
	return false
}

// CalendarMeeting is an entry from the user's calendar.
// ExternalID is unique when set and is used to dedupe imports.
type CalendarMeeting struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         *uint          `json:"user_id,omitempty" gorm:"index"`
	ExternalID     *string        `json:"external_id,omitempty" gorm:"type:varchar(255);uniqueIndex"`
	Title          string         `json:"title" gorm:"type:varchar(300);not null"`
	Description    *string        `json:"description,omitempty" gorm:"type:text"`
	StartTime      time.Time      `json:"start_time" gorm:"not null;index"`
	EndTime        time.Time      `json:"end_time" gorm:"not null"`
	Location       *string        `json:"location,omitempty" gorm:"type:varchar(300)"`
	Attendees      *string        `json:"attendees,omitempty" gorm:"type:text"`
	CalendarSource CalendarSource `json:"calendar_source" gorm:"type:varchar(50);not null;default:'manual'"`
	IsRecurring    bool           `json:"is_recurring" gorm:"not null;default:false"`
	PrepNotes      []PrepNote     `json:"prep_notes" gorm:"foreignKey:CalendarMeetingID"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for CalendarMeeting
func (CalendarMeeting) TableName() string {
	return "calendar_meetings"
}

// PrepNote is one checklist line for a calendar meeting.
// OrderIndex is the sibling count at creation and is never renumbered.
type PrepNote struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CalendarMeetingID uint      `json:"calendar_meeting_id" gorm:"not null;index"`
	Content           string    `json:"content" gorm:"type:text;not null"`
	IsCompleted       bool      `json:"is_completed" gorm:"not null;default:false"`
	OrderIndex        int       `json:"order_index" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for PrepNote
func (PrepNote) TableName() string {
	return "meeting_prep_notes"
}
