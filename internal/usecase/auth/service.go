package auth

import (
	"context"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
)

// Service defines the interface for the account use case
type Service interface {
	// Register creates an account and signs it in
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Login checks a username/password pair and issues tokens
	Login(ctx context.Context, username, password string) (*AuthResult, error)

	// Refresh exchanges a refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	// Me returns the account behind an authenticated request
	Me(ctx context.Context, userID uint) (*entities.User, error)

	// CheckUsername looks up a username without authenticating
	CheckUsername(ctx context.Context, username string) (*entities.User, bool, error)

	// MigrateData assigns legacy rows without an owner to userID
	MigrateData(ctx context.Context, userID uint) (*repositories.ClaimResult, error)
}

// Ensure AuthService implements Service interface
var _ Service = (*AuthService)(nil)
