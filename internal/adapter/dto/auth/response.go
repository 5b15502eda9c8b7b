package auth

import "time"

// UserResponse represents user information in responses
type UserResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	DisplayName *string    `json:"display_name"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AuthResponse represents the authentication response with tokens
type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"` // seconds
	TokenType    string        `json:"token_type"` // "bearer"
	User         *UserResponse `json:"user"`
}

// CheckUsernameResponse reports whether a username is registered
type CheckUsernameResponse struct {
	Exists bool          `json:"exists"`
	User   *UserResponse `json:"user,omitempty"`
}

// MigrateDataResponse reports how many legacy rows were claimed
type MigrateDataResponse struct {
	Message  string       `json:"message"`
	Migrated MigratedRows `json:"migrated"`
}

// MigratedRows counts claimed rows per table
type MigratedRows struct {
	Employees        int64 `json:"employees"`
	Meetings         int64 `json:"meetings"`
	Tasks            int64 `json:"tasks"`
	QuickNotes       int64 `json:"quick_notes"`
	CalendarMeetings int64 `json:"calendar_meetings"`
}
