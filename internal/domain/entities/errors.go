package entities

import "errors"

// Domain errors
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidTaskType   = errors.New("invalid task type")
	ErrInvalidPersonType = errors.New("invalid person type")
	ErrInvalidCategory   = errors.New("invalid note category")
	ErrInvalidSource     = errors.New("invalid calendar source")
)

// All lists every persisted model, in dependency order, for schema setup.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Person{},
		&Meeting{},
		&ActionItem{},
		&Topic{},
		&Task{},
		&CalendarMeeting{},
		&PrepNote{},
		&QuickNote{},
	}
}
