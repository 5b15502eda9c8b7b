package entities

import (
	"strings"
	"time"
)

// User is a login account. Every person, task, meeting and note row
// carries the owning user's id; NULL marks legacy unowned data.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName  *string    `json:"display_name,omitempty" gorm:"type:varchar(200)"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:text;not null"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NormalizeUsername trims and lowercases a login name
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Name returns the display name, falling back to the username
func (u *User) Name() string {
	if u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) != "" {
		return *u.DisplayName
	}
	return u.Username
}
