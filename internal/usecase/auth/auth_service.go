package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
	"github.com/johnquangdev/one-on-one-manager/pkg/jwt"
)

// AuthService handles username/password accounts and token issuing
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	hashCost   int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		hashCost:   bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hashCost = cost
	return s
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName *string
}

// AuthResult represents a signed-in account
type AuthResult struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
}

// Register creates an account. The username is stored normalized,
// the display name keeps its casing.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	username := entities.NormalizeUsername(input.Username)
	if username == "" || input.Password == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, usecaseErrors.ErrUsernameTaken
	} else if !errors.Is(err, entities.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if input.DisplayName != nil {
		if name := strings.TrimSpace(*input.DisplayName); name != "" {
			user.DisplayName = &name
		}
	}
	now := time.Now().UTC()
	user.LastLogin = &now

	// a concurrent registration can win between the check and the insert
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entities.ErrDuplicate) {
			return nil, usecaseErrors.ErrUsernameTaken
		}
		return nil, err
	}

	return s.issue(user)
}

// Login verifies credentials. Unknown users and wrong passwords look the same.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, entities.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	return s.issue(user)
}

// Refresh issues a new token pair from a refresh token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.issue(user)
}

// Me returns the current user
func (s *AuthService) Me(ctx context.Context, userID uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CheckUsername reports whether a username is registered
func (s *AuthService) CheckUsername(ctx context.Context, username string) (*entities.User, bool, error) {
	user, err := s.userRepo.FindByUsername(ctx, entities.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find user: %w", err)
	}
	return user, true, nil
}

// MigrateData gives the caller every row that has no owner yet
func (s *AuthService) MigrateData(ctx context.Context, userID uint) (*repositories.ClaimResult, error) {
	result, err := s.userRepo.ClaimUnowned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate data: %w", err)
	}
	return result, nil
}

func (s *AuthService) issue(user *entities.User) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
