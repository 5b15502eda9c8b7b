package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUsernameTaken      = errors.New("username already taken")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// People errors
var (
	ErrPersonNotFound = errors.New("person not found")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrActionItemNotFound = errors.New("action item not found")
	ErrTopicNotFound      = errors.New("topic not found")
)

// Task errors
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Calendar errors
var (
	ErrCalendarMeetingNotFound = errors.New("calendar meeting not found")
	ErrPrepNoteNotFound        = errors.New("prep note not found")
	ErrExternalIDTaken         = errors.New("external id already exists")
	ErrInvalidTimeRange        = errors.New("end time must not be before start time")
	ErrInvalidDate             = errors.New("invalid date format, use YYYY-MM-DD")
)

// Note errors
var (
	ErrNoteNotFound = errors.New("note not found")
)

// AI errors
var (
	ErrEmptyCompletion  = errors.New("empty completion")
	ErrScreenshotFailed = errors.New("screenshot extraction failed")
)
