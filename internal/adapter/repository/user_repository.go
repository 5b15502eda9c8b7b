package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
)

// userRepository implements the UserRepository interface using GORM
type userRepository struct {
	base
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &userRepository{base{db: db}}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.conn(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", duplicate(err))
	}
	return nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.conn(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// FindByUsername finds a user by normalized username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.conn(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UpdateLastLogin updates the last login timestamp
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error {
	return r.conn(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		Update("last_login", at).Error
}

// ClaimUnowned assigns legacy rows (user_id IS NULL) to userID
func (r *userRepository) ClaimUnowned(ctx context.Context, userID uint) (*repositories.ClaimResult, error) {
	db := r.conn(ctx)
	claim := func(model interface{}) (int64, error) {
		res := db.Model(model).Where("user_id IS NULL").Update("user_id", userID)
		return res.RowsAffected, res.Error
	}

	var (
		result repositories.ClaimResult
		err    error
	)
	if result.People, err = claim(&entities.Person{}); err != nil {
		return nil, fmt.Errorf("failed to claim people: %w", err)
	}
	if result.Meetings, err = claim(&entities.Meeting{}); err != nil {
		return nil, fmt.Errorf("failed to claim meetings: %w", err)
	}
	if result.Tasks, err = claim(&entities.Task{}); err != nil {
		return nil, fmt.Errorf("failed to claim tasks: %w", err)
	}
	if result.QuickNotes, err = claim(&entities.QuickNote{}); err != nil {
		return nil, fmt.Errorf("failed to claim quick notes: %w", err)
	}
	if result.CalendarMeetings, err = claim(&entities.CalendarMeeting{}); err != nil {
		return nil, fmt.Errorf("failed to claim calendar meetings: %w", err)
	}
	return &result, nil
}
