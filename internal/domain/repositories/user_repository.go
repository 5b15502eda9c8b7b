package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint) (*entities.User, error)

	// FindByUsername finds a user by normalized username
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error

	// ClaimUnowned assigns every row without an owner to userID
	ClaimUnowned(ctx context.Context, userID uint) (*ClaimResult, error)
}

// ClaimResult counts rows moved to a user by ClaimUnowned
type ClaimResult struct {
	People           int64 `json:"employees"`
	Meetings         int64 `json:"meetings"`
	Tasks            int64 `json:"tasks"`
	QuickNotes       int64 `json:"quick_notes"`
	CalendarMeetings int64 `json:"calendar_meetings"`
}
